package content_test

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/let-the-dreamers-rise/resume-sub000/pkg/content"
)

type countingInvalidator struct {
	clears atomic.Int64
}

func (c *countingInvalidator) Clear() {
	c.clears.Add(1)
}

var _ = Describe("Watcher", func() {
	It("invalidates the target when a content file changes", func() {
		dir := GinkgoT().TempDir()
		target := &countingInvalidator{}

		watcher, err := content.NewWatcher(dir, target, nil)
		Expect(err).NotTo(HaveOccurred())
		defer watcher.Close()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		watcher.Start(ctx)

		path := filepath.Join(dir, "projects.json")
		Expect(os.WriteFile(path, []byte(`[]`), 0o644)).To(Succeed())

		Eventually(func() int64 {
			return target.clears.Load()
		}, 2*time.Second, 10*time.Millisecond).Should(BeNumerically(">=", 1))
	})

	It("fails for a missing directory", func() {
		_, err := content.NewWatcher("/nonexistent/path/for/watcher", &countingInvalidator{}, nil)
		Expect(err).To(HaveOccurred())
	})
})
