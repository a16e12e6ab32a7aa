package pathvar_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/arthur-debert/pathvar/cmd/pathvar"
	"github.com/arthur-debert/pathvar/pkg/errors"
	"github.com/arthur-debert/pathvar/pkg/output"
)

// result mirrors what the binary would produce for one invocation
type result struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Err      error
}

// execute runs the command tree and renders failures the way main does
func execute(args ...string) result {
	var stdout, stderr bytes.Buffer

	rootCmd := pathvar.NewRootCmd()
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	res := result{}
	if err := rootCmd.Execute(); err != nil {
		stderr.WriteString(output.RenderError(err, false) + "\n")
		res.ExitCode = 1
		res.Err = err
	}
	res.Stdout = stdout.String()
	res.Stderr = stderr.String()
	return res
}

// setenv sets an environment variable for the current test only
func setenv(key, value string) {
	old, had := os.LookupEnv(key)
	Expect(os.Setenv(key, value)).To(Succeed())
	DeferCleanup(func() {
		if had {
			_ = os.Setenv(key, old)
		} else {
			_ = os.Unsetenv(key)
		}
	})
}

// unsetenv removes an environment variable for the current test only
func unsetenv(key string) {
	setenv(key, "")
	Expect(os.Unsetenv(key)).To(Succeed())
}

func list(entries ...string) string {
	return strings.Join(entries, string(os.PathListSeparator))
}

var _ = Describe("pathvar", func() {
	var stateDir string

	BeforeEach(func() {
		stateDir = GinkgoT().TempDir()
		setenv("PATHVAR_STATE_DIR", stateDir)
		setenv("PATHVAR_CONFIG_DIR", GinkgoT().TempDir())
		setenv("PATHVAR_SESSION_ID", "acceptance")
		setenv("NO_COLOR", "1")
	})

	Describe("append", func() {
		It("adds the entry at the end and prints nothing", func() {
			setenv("PATH", "/usr/bin")

			res := execute("append", "/bin")
			Expect(res.ExitCode).To(Equal(0))
			Expect(res.Stdout).To(BeEmpty())

			res = execute("list", "--format", "text")
			Expect(res.ExitCode).To(Equal(0))
			Expect(res.Stdout).To(Equal("/usr/bin\n/bin\n"))
		})

		It("keeps duplicates", func() {
			setenv("PATH", "/usr/bin")

			Expect(execute("append", "/usr/bin").ExitCode).To(Equal(0))

			res := execute("env")
			Expect(res.Stdout).To(Equal("export PATH='" + list("/usr/bin", "/usr/bin") + "';\n"))
		})

		It("fails with VARIABLE_NOT_SET for an unset variable", func() {
			unsetenv("MYVAR")

			res := execute("append", "/bin", "--var", "MYVAR")
			Expect(res.ExitCode).To(Equal(1))
			Expect(errors.IsErrorCode(res.Err, errors.ErrVariableNotSet)).To(BeTrue())
			Expect(res.Stdout).To(BeEmpty())
			Expect(res.Stderr).To(ContainSubstring("MYVAR"))
			Expect(strings.Count(res.Stderr, "\n")).To(Equal(1))
		})

		It("does not create the variable when it is unset", func() {
			unsetenv("MYVAR")

			execute("append", "/bin", "-v", "MYVAR")

			res := execute("env")
			Expect(res.Stdout).NotTo(ContainSubstring("MYVAR"))
		})

		It("fails with INVALID_PATH_ENCODING and leaves PATH alone", func() {
			setenv("PATH", "/usr/bin")

			res := execute("append", "/opt/\xfe\xff")
			Expect(res.ExitCode).To(Equal(1))
			Expect(res.Stderr).To(HavePrefix("Error [INVALID_PATH_ENCODING]: Invalid path in argument 'path'"))

			_, err := os.Stat(filepath.Join(stateDir, "sessions", "acceptance.toml"))
			Expect(os.IsNotExist(err)).To(BeTrue())

			res = execute("list", "--format", "text")
			Expect(res.Stdout).To(Equal("/usr/bin\n"))
		})

		It("rejects entries holding the separator", func() {
			setenv("PATH", "/usr/bin")

			res := execute("append", list("/a", "/b"))
			Expect(res.ExitCode).To(Equal(1))
			Expect(errors.IsErrorCode(res.Err, errors.ErrInvalidPathEntry)).To(BeTrue())
		})
	})

	Describe("prepend", func() {
		It("puts the entry first", func() {
			setenv("PATH", list("/usr/bin", "/bin"))

			Expect(execute("prepend", "/opt/bin").ExitCode).To(Equal(0))

			res := execute("list", "--format", "text")
			Expect(res.Stdout).To(Equal("/opt/bin\n/usr/bin\n/bin\n"))
		})
	})

	Describe("remove", func() {
		It("drops every occurrence and keeps the order of the rest", func() {
			setenv("PATH", list("/a", "/b", "/a", "/c"))

			Expect(execute("remove", "/a").ExitCode).To(Equal(0))

			res := execute("list", "--format", "text")
			Expect(res.Stdout).To(Equal("/b\n/c\n"))
		})

		It("succeeds when the entry is absent", func() {
			setenv("PATH", "/usr/bin")

			res := execute("remove", "/nowhere")
			Expect(res.ExitCode).To(Equal(0))
			Expect(res.Stdout).To(BeEmpty())
		})

		It("matches cleaned paths when configured to", func() {
			setenv("PATH", list("/usr/bin/", "/bin"))
			setenv("PATHVAR_PATHVAR_COMPARE", "clean")

			Expect(execute("remove", "/usr/bin").ExitCode).To(Equal(0))

			res := execute("list", "--format", "text")
			Expect(res.Stdout).To(Equal("/bin\n"))
		})
	})

	Describe("dedupe", func() {
		It("keeps first occurrences", func() {
			setenv("PATH", list("/b", "/a", "/b", "/a"))

			Expect(execute("dedupe").ExitCode).To(Equal(0))

			res := execute("list", "--format", "text")
			Expect(res.Stdout).To(Equal("/b\n/a\n"))
		})
	})

	Describe("env", func() {
		It("prints fish list syntax", func() {
			setenv("PATH", "/usr/bin")
			Expect(execute("append", "/bin").ExitCode).To(Equal(0))

			res := execute("env", "--shell", "fish")
			Expect(res.Stdout).To(Equal("set -gx PATH '/usr/bin' '/bin';\n"))
		})
	})
})
