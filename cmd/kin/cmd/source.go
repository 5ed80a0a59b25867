package cmd

import (
	"errors"
	"io"
	"io/fs"

	kinerror "github.com/kin-lang/kin/foundation/core/error"
	"github.com/kin-lang/kin/foundation/utils/filex"
)

// stdinName selects standard input in place of a file path
const stdinName = "-"

// readSource returns the contents of path, or of stdin for "-"
func (a *app) readSource(path string) (string, error) {
	if path == stdinName {
		data, err := io.ReadAll(a.stdin)
		if err != nil {
			return "", fileError(err, "<stdin>", kinerror.CodeFileRead)
		}
		return string(data), nil
	}

	src, err := filex.ReadString(path)
	if err != nil {
		code := kinerror.CodeFileRead
		if errors.Is(err, fs.ErrNotExist) {
			code = kinerror.CodeFileNotFound
		}
		return "", fileError(err, path, code)
	}
	return src, nil
}

func fileError(err error, path string, code kinerror.Code) error {
	key := "diagnostics.file_read"
	if code == kinerror.CodeFileNotFound {
		key = "diagnostics.file_not_found"
	}
	return kinerror.Wrap(err, "cannot read source").
		WithCode(code).
		WithOperation("kin.readSource").
		WithDetail("path", path).
		WithMessage(key, map[string]interface{}{"path": path})
}

// sourceArg resolves the single input of tokens and parse: an inline
// --eval string or a path argument
func (a *app) sourceArg(args []string, eval string) (string, error) {
	switch {
	case eval != "" && len(args) > 0:
		return "", kinerror.New("use either --eval or a file, not both").
			WithCode(kinerror.CodeInvalidInput).
			WithOperation("kin.sourceArg")
	case eval != "":
		return eval, nil
	case len(args) == 1:
		return a.readSource(args[0])
	default:
		return "", kinerror.New("a file, - or --eval is required").
			WithCode(kinerror.CodeInvalidInput).
			WithOperation("kin.sourceArg").
			WithMessage("diagnostics.invalid_arguments", nil)
	}
}
