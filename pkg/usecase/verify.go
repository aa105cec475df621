package usecase

import (
	"archive/zip"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/vsixget/pkg/domain/types"
)

// VerifyVSIX checks that the file at path is a well-formed VSIX package: it
// exists, is non-empty, and opens as a zip archive whose entry listing
// enumerates cleanly. Every failure mode comes back as a validation-tagged
// error; nothing panics past this boundary.
func VerifyVSIX(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return goerr.Wrap(err, "downloaded file does not exist",
			goerr.T(types.ErrTagValidation),
			goerr.V("path", path),
		)
	}
	if info.Size() == 0 {
		return goerr.New("downloaded file is empty",
			goerr.T(types.ErrTagValidation),
			goerr.V("path", path),
		)
	}

	zr, err := zip.OpenReader(path)
	if err != nil {
		return goerr.Wrap(err, "downloaded file is not a valid VSIX (zip) archive",
			goerr.T(types.ErrTagValidation),
			goerr.V("path", path),
		)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name == "" {
			return goerr.New("VSIX archive contains an unnamed entry",
				goerr.T(types.ErrTagValidation),
				goerr.V("path", path),
			)
		}
	}

	return nil
}
