package commands

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/okian/fisa/internal/adapters/http/api"
	"github.com/okian/fisa/internal/smoke"
	"github.com/okian/fisa/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/smartystreets/goconvey/convey"
)

func newTarget() *httptest.Server {
	m := metrics.NewManager(metrics.WithPrometheusRegistry(prometheus.NewRegistry()))
	server := api.NewServer(api.WithMetrics(m))
	mux := http.NewServeMux()
	server.Register(context.Background(), mux)
	return httptest.NewServer(server.Handler(mux))
}

func execute(args ...string) (string, error) {
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCommands(t *testing.T) {
	convey.Convey("Given a running instance", t, func() {
		target := newTarget()
		defer target.Close()

		convey.Convey("When running check", func() {
			out, err := execute("check", "--url", target.URL)

			convey.Convey("Then every property should pass", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(out, convey.ShouldContainSubstring, "PASS  GET /health returns OK")
				convey.So(out, convey.ShouldNotContainSubstring, "FAIL")
				convey.So(out, convey.ShouldContainSubstring, "6/6 passed")
			})
		})

		convey.Convey("When running score", func() {
			out, err := execute("score", "--url", target.URL, "--value", "5")

			convey.Convey("Then the reply should be printed", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(out, convey.ShouldEqual, "received:5\n")
			})
		})

		convey.Convey("When running score with a bad value", func() {
			_, err := execute("score", "--url", target.URL, "--value", "x")

			convey.Convey("Then the command should fail", func() {
				convey.So(errors.Is(err, smoke.ErrUnexpectedStatus), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When running score without a value", func() {
			_, err := execute("score", "--url", target.URL)

			convey.Convey("Then the required flag should be enforced", func() {
				convey.So(err, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When running load", func() {
			out, err := execute("load", "--url", target.URL, "--requests", "20", "--workers", "3")

			convey.Convey("Then the counts should be printed", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(out, convey.ShouldContainSubstring, "submitted=20 successful=20 failed=0")
			})
		})
	})

	convey.Convey("Given an instance that always fails", t, func() {
		target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer target.Close()

		convey.Convey("When running check", func() {
			out, err := execute("check", "--url", target.URL)

			convey.Convey("Then failures should be listed and the command should fail", func() {
				convey.So(errors.Is(err, smoke.ErrCheckFailed), convey.ShouldBeTrue)
				convey.So(out, convey.ShouldContainSubstring, "FAIL  GET /health returns OK")
				convey.So(out, convey.ShouldContainSubstring, "0/6 passed")
			})
		})
	})
}
