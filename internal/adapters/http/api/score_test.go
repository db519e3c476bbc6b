package api_test

import (
	"errors"
	"testing"

	"github.com/okian/fisa/internal/adapters/http/api"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParseScore(t *testing.T) {
	Convey("Given raw score parameters", t, func() {
		cases := []struct {
			raw  string
			want int32
		}{
			{"5", 5},
			{"0", 0},
			{"-3", -3},
			{"+8", 8},
			{" 12 ", 12},
			{"007", 7},
			{"2147483647", 2147483647},
			{"-2147483648", -2147483648},
		}

		Convey("When they are base-10 integers in range", func() {
			for _, c := range cases {
				got, err := api.ParseScore(c.raw)
				So(err, ShouldBeNil)
				So(got, ShouldEqual, c.want)
			}
		})

		Convey("When they are blank", func() {
			for _, raw := range []string{"", "   "} {
				_, err := api.ParseScore(raw)
				So(errors.Is(err, api.ErrMissingParam), ShouldBeTrue)
			}
		})

		Convey("When they are not integers or overflow", func() {
			for _, raw := range []string{"abc", "1.5", "0x10", "1e3", "2147483648", "-2147483649", "5 5"} {
				_, err := api.ParseScore(raw)
				So(errors.Is(err, api.ErrInvalidParam), ShouldBeTrue)
			}
		})
	})
}
