package cmd

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/spf13/cobra"

	kinerror "github.com/kin-lang/kin/foundation/core/error"
	kinlog "github.com/kin-lang/kin/foundation/core/log"
	"github.com/kin-lang/kin/foundation/utils/filex"
	"github.com/kin-lang/kin/foundation/utils/slicex"
)

// sourcePattern selects the files checked in a directory argument
const sourcePattern = "*.kin"

// checkResult is the outcome for one file
type checkResult struct {
	path       string
	statements int
	err        error
}

func newCheckCmd(a *app) *cobra.Command {
	var (
		jobs  int
		quiet bool
	)

	cmd := &cobra.Command{
		Use:   "check <file|dir>...",
		Short: "Parse files concurrently and report errors",
		Long: `Parses every file with its own parser, several at a time, and prints one
line per file in argument order followed by a summary. Directories are
searched recursively for *.kin files. The exit code is that of the first
failing file.`,
		Example: `  kin check examples/
  kin check --jobs 1 a.kin b.kin`,
		Args: minArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if jobs <= 0 {
				jobs = runtime.GOMAXPROCS(0)
			}

			paths, err := filex.Expand(args, sourcePattern)
			if err != nil {
				return kinerror.Wrap(err, "cannot list source files").
					WithCode(kinerror.CodeFileRead).
					WithOperation("kin.check")
			}
			paths = slicex.Unique(paths)
			if len(paths) == 0 {
				return invalidArgs(cmd, kinerror.New("no "+sourcePattern+" files found"))
			}

			timer := a.logger.StartTimer("kin.check").
				WithErrorLevel(kinlog.LevelDebug).
				WithField("files", len(paths)).
				WithField("jobs", jobs)
			results := a.checkFiles(paths, jobs)
			failed := slicex.Count(results, func(r checkResult) bool { return r.err != nil })

			out := cmd.OutOrStdout()
			var first error
			for _, r := range results {
				if r.err != nil {
					if first == nil {
						first = r.err
					}
					fmt.Fprintln(out, RenderError(r.path+": "+a.diagnose(r.err)))
					continue
				}
				if !quiet {
					fmt.Fprintln(out, okStyle.Render("[+] ")+a.loc.Plural("check.ok", r.statements, map[string]interface{}{
						"path":       r.path,
						"statements": r.statements,
					}))
				}
			}

			fmt.Fprintln(out, mutedStyle.Render(a.loc.Plural("check.summary", len(results), map[string]interface{}{
				"count":  len(results),
				"failed": failed,
			})))

			if first != nil {
				timer.WithField("failed", failed).StopWithError(first)
				return &reportedError{err: first}
			}
			timer.Stop()
			return nil
		},
	}

	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "files parsed at once (default: GOMAXPROCS)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only print failures and the summary")
	return cmd
}

// checkFiles parses paths with at most jobs workers. Results keep the
// order of paths.
func (a *app) checkFiles(paths []string, jobs int) []checkResult {
	results := make([]checkResult, len(paths))
	work := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < min(jobs, len(paths)); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range work {
				results[i] = a.checkFile(paths[i])
			}
		}()
	}

	for i := range paths {
		work <- i
	}
	close(work)
	wg.Wait()

	return results
}

func (a *app) checkFile(path string) checkResult {
	src, err := a.readSource(path)
	if err != nil {
		return checkResult{path: path, err: err}
	}

	program, err := a.engine.Parse(src)
	if err != nil {
		a.logger.Debug("Check failed", kinlog.Fields{
			"path": path,
			"code": kinerror.GetCode(err).String(),
		})
		return checkResult{path: path, err: err}
	}
	return checkResult{path: path, statements: len(program.Body)}
}
