// Package input validates the files handed to a scoring run.
//
// Checks never block on user input themselves; situations that need
// consent are passed to a Confirmer supplied by the caller.
package input

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	// LargeInputSize is the sequence file size above which consent is needed.
	LargeInputSize int64 = 1 << 30
	// ParamsSizeLimit is the hard size limit of a parameter file.
	ParamsSizeLimit int64 = 2048
)

var (
	// FastaExtensions are the accepted sequence file extensions.
	FastaExtensions = []string{".fna", ".fasta", ".fa"}
	// ParamsExtensions are the accepted parameter file extensions.
	ParamsExtensions = []string{".txt"}
)

// Files names the files of one run. Params and Output may be empty.
type Files struct {
	Fasta  string
	Params string
	Output string
}

// CheckArgs validates the number of positional arguments.
func CheckArgs(args []string) error {
	if len(args) < 1 || len(args) > 3 {
		return &ArityError{Got: len(args), Min: 1, Max: 3}
	}
	return nil
}

// ClassifyArgs assigns positional arguments to files. The first argument
// is the sequence file. Extra arguments whose name contains "param" are
// the parameter file, else those containing "output" the output file;
// others fill the parameter file first, then the output file.
func ClassifyArgs(args []string) (Files, error) {
	if err := CheckArgs(args); err != nil {
		return Files{}, err
	}

	files := Files{Fasta: args[0]}
	var rest []string

	for _, arg := range args[1:] {
		name := strings.ToLower(filepath.Base(arg))
		switch {
		case strings.Contains(name, "param") && files.Params == "":
			files.Params = arg
		case strings.Contains(name, "output") && files.Output == "":
			files.Output = arg
		default:
			rest = append(rest, arg)
		}
	}

	for _, arg := range rest {
		switch {
		case files.Params == "":
			files.Params = arg
		case files.Output == "":
			files.Output = arg
		default:
			return Files{}, fmt.Errorf("cannot assign argument %q", arg)
		}
	}

	return files, nil
}

func hasExtension(path string, allowed []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, a := range allowed {
		if ext == a {
			return true
		}
	}
	return false
}

func stat(path string) (os.FileInfo, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &NotFoundError{Path: path}
	}
	if err != nil {
		return nil, fmt.Errorf("checking %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	return info, nil
}

// CheckFasta validates the sequence file. Files above LargeInputSize need
// consent.
func CheckFasta(path string, confirm Confirmer) error {
	info, err := stat(path)
	if err != nil {
		return err
	}

	if !hasExtension(path, FastaExtensions) {
		hint := "check whether the file is compressed"
		if strings.EqualFold(filepath.Ext(path), ".fastq") {
			hint = "FASTQ files are not supported, provide a FASTA file instead"
		}
		return &ExtensionError{Path: path, Allowed: FastaExtensions, Hint: hint}
	}

	if info.Size() > LargeInputSize && !confirm(Confirmation{Condition: LargeInput, Path: path}) {
		return ErrDeclined
	}

	return nil
}

// CheckParams validates the parameter file. A missing file needs consent
// to continue with defaults, in which case the returned path is empty.
func CheckParams(path string, confirm Confirmer) (string, error) {
	if path == "" {
		return "", nil
	}

	info, err := stat(path)
	var notFound *NotFoundError
	if errors.As(err, &notFound) {
		if confirm(Confirmation{Condition: MissingParams, Path: path}) {
			return "", nil
		}
		return "", ErrDeclined
	}
	if err != nil {
		return "", err
	}

	if !hasExtension(path, ParamsExtensions) {
		return "", &ExtensionError{Path: path, Allowed: ParamsExtensions, Hint: "it has to be a plain text file"}
	}

	if info.Size() > ParamsSizeLimit {
		return "", &TooLargeError{
			Path:  path,
			Size:  info.Size(),
			Limit: ParamsSizeLimit,
			Hint:  "it should only contain the parameters you choose to change",
		}
	}

	return path, nil
}

// CheckOutput validates the output file. An existing file needs consent to
// be overwritten.
func CheckOutput(path string, confirm Confirmer) error {
	if path == "" {
		return nil
	}

	_, err := stat(path)
	var notFound *NotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if !confirm(Confirmation{Condition: OverwriteOutput, Path: path}) {
		return ErrDeclined
	}
	return nil
}

// Check validates all files of a run in order: sequence file, parameter
// file, output file. It returns files with Params cleared when the user
// chose to continue with default parameters.
func Check(files Files, confirm Confirmer) (Files, error) {
	if err := CheckFasta(files.Fasta, confirm); err != nil {
		return files, err
	}

	params, err := CheckParams(files.Params, confirm)
	if err != nil {
		return files, err
	}
	files.Params = params

	if err := CheckOutput(files.Output, confirm); err != nil {
		return files, err
	}

	return files, nil
}
