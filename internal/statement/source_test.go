package statement

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("OpenStatement", func() {
	var (
		tmpDir string
		path   string
		stdin  io.Reader
		rc     io.ReadCloser
		err    error
	)

	BeforeEach(func() {
		tmpDir = GinkgoT().TempDir()
		stdin = strings.NewReader("from stdin")
	})

	JustBeforeEach(func() {
		rc, err = OpenStatement(path, stdin)
	})

	AfterEach(func() {
		if rc != nil {
			rc.Close()
		}
	})

	When("no path is given", func() {
		BeforeEach(func() {
			path = "  "
		})

		It("should return ErrNoStatement", func() {
			Expect(err).To(MatchError(ErrNoStatement))
			Expect(rc).To(BeNil())
		})
	})

	When("the path is -", func() {
		BeforeEach(func() {
			path = StdinName
		})

		It("should read standard input", func() {
			Expect(err).NotTo(HaveOccurred())
			data, readErr := io.ReadAll(rc)
			Expect(readErr).NotTo(HaveOccurred())
			Expect(string(data)).To(Equal("from stdin"))
		})
	})

	When("the file exists", func() {
		BeforeEach(func() {
			path = filepath.Join(tmpDir, "Statement-March.PDF")
			Expect(os.WriteFile(path, []byte("%PDF-1.4"), 0644)).To(Succeed())
		})

		It("should open it", func() {
			Expect(err).NotTo(HaveOccurred())
			data, readErr := io.ReadAll(rc)
			Expect(readErr).NotTo(HaveOccurred())
			Expect(string(data)).To(Equal("%PDF-1.4"))
		})
	})

	When("the file does not exist", func() {
		BeforeEach(func() {
			path = filepath.Join(tmpDir, "missing.pdf")
		})

		It("should return an error", func() {
			Expect(err).To(MatchError(ContainSubstring("opening statement")))
			Expect(rc).To(BeNil())
		})
	})

	When("the file is not a PDF", func() {
		BeforeEach(func() {
			path = filepath.Join(tmpDir, "statement.csv")
			Expect(os.WriteFile(path, []byte("a,b"), 0644)).To(Succeed())
		})

		It("should reject it", func() {
			Expect(err).To(MatchError(ContainSubstring("only PDF is accepted")))
		})
	})
})
