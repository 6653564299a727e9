package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/let-the-dreamers-rise/resume-sub000/pkg/logger"
)

var _ = Describe("Logger", func() {
	Describe("New", func() {
		It("defaults to a text logger", func() {
			var buf bytes.Buffer
			l := logger.New(logger.WithWriter(&buf))
			l.Info("corpus ready", "documents", 12)

			output := buf.String()
			Expect(output).To(ContainSubstring("corpus ready"))
			Expect(output).To(ContainSubstring("documents"))
		})

		It("emits debug records only when enabled", func() {
			var enabled, disabled bytes.Buffer

			logger.New(logger.WithWriter(&enabled), logger.WithDebug(true)).Debug("visible")
			logger.New(logger.WithWriter(&disabled), logger.WithDebug(false)).Debug("hidden")

			Expect(enabled.String()).To(ContainSubstring("visible"))
			Expect(disabled.String()).To(BeEmpty())
		})

		It("emits JSON records", func() {
			var buf bytes.Buffer
			l := logger.New(logger.WithWriter(&buf), logger.WithJSON(true))
			l.Info("search served", "results", 3)

			var parsed map[string]any
			Expect(json.Unmarshal(buf.Bytes(), &parsed)).To(Succeed())
			Expect(parsed["msg"]).To(Equal("search served"))
			Expect(parsed["results"]).To(BeNumerically("==", 3))
		})

		It("emits pretty records", func() {
			var buf bytes.Buffer
			l := logger.New(logger.WithWriter(&buf), logger.WithPretty(true))
			l.Info("serving folio")

			Expect(buf.String()).To(ContainSubstring("serving folio"))
		})

		It("fans out to multiple writers", func() {
			var buf1, buf2 bytes.Buffer
			l := logger.New(logger.WithWriters(&buf1, &buf2))
			l.Info("fanout")

			Expect(buf1.String()).To(ContainSubstring("fanout"))
			Expect(buf2.String()).To(ContainSubstring("fanout"))
		})

		It("binds fields to child loggers", func() {
			var buf bytes.Buffer
			l := logger.New(logger.WithWriter(&buf), logger.WithJSON(true))
			l.With("component", "store").Info("initialized")

			line := strings.TrimSpace(buf.String())
			var parsed map[string]any
			Expect(json.Unmarshal([]byte(line), &parsed)).To(Succeed())
			Expect(parsed["component"]).To(Equal("store"))
			Expect(parsed["msg"]).To(Equal("initialized"))
		})
	})

	Describe("Nop", func() {
		It("discards everything without panicking", func() {
			l := logger.Nop()
			Expect(func() {
				l.Debug("msg")
				l.Info("msg")
				l.With("key", "value").Warn("msg")
				l.WithGroup("group").Error("msg")
			}).NotTo(Panic())

			Expect(l.Handler().Enabled(context.Background(), slog.LevelError)).To(BeFalse())
		})
	})

	Describe("Multi", func() {
		It("dispatches to all loggers", func() {
			var buf1, buf2 bytes.Buffer
			multi := logger.Multi(
				logger.New(logger.WithWriter(&buf1)),
				logger.New(logger.WithWriter(&buf2)),
			)
			multi.Info("broadcast")

			Expect(buf1.String()).To(ContainSubstring("broadcast"))
			Expect(buf2.String()).To(ContainSubstring("broadcast"))
		})

		It("carries With and WithGroup through the fan-out", func() {
			var buf bytes.Buffer
			multi := logger.Multi(logger.New(logger.WithWriter(&buf), logger.WithJSON(true)))

			multi.With("component", "api").WithGroup("request").Info("handled", "method", "GET")

			line := strings.TrimSpace(buf.String())
			var parsed map[string]any
			Expect(json.Unmarshal([]byte(line), &parsed)).To(Succeed())
			Expect(parsed["component"]).To(Equal("api"))

			group, ok := parsed["request"].(map[string]any)
			Expect(ok).To(BeTrue())
			Expect(group["method"]).To(Equal("GET"))
		})
	})
})
