package logging_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/f2fin/directory-dashboard/internal/logging"
)

func TestLogging(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Logging Suite")
}

var _ = Describe("New", func() {
	var dir string

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "logging")
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(os.RemoveAll, dir)
	})

	It("should write json entries at or above the level", func() {
		path := filepath.Join(dir, "app.log")
		logger, err := logging.New("warn", "json", path)
		Expect(err).NotTo(HaveOccurred())

		logger.Info("dropped")
		logger.Warn("kept")
		_ = logger.Sync()

		data, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		Expect(lines).To(HaveLen(1))
		var entry map[string]any
		Expect(json.Unmarshal([]byte(lines[0]), &entry)).To(Succeed())
		Expect(entry).To(HaveKeyWithValue("msg", "kept"))
		Expect(entry).To(HaveKeyWithValue("level", "warn"))
	})

	It("should write console entries for the text format", func() {
		path := filepath.Join(dir, "app.log")
		logger, err := logging.New("DEBUG", "text", path)
		Expect(err).NotTo(HaveOccurred())
		logger.Debug("fetching lenders")
		_ = logger.Sync()

		data, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(ContainSubstring("DEBUG"))
		Expect(string(data)).To(ContainSubstring("fetching lenders"))
	})

	It("should reject unknown levels and formats", func() {
		_, err := logging.New("loud", "json")
		Expect(err).To(HaveOccurred())
		_, err = logging.New("info", "xml")
		Expect(err).To(MatchError(ContainSubstring("must be text or json")))
	})
})
