package fs

import (
	"errors"
	"os"

	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/zerr"
)

// Enter changes the process working directory to dir and returns a restore
// function that moves back to the previous directory. Callers must defer the
// restore so the invoking shell session ends up where it started on every
// exit path, including failures mid-run.
func Enter(dir string) (restore func() error, err error) {
	prev, err := os.Getwd()
	if err != nil {
		return nil, errors.Join(domain.ErrWorkdirFailed, err)
	}

	if err := os.Chdir(dir); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrWorkdirFailed, err), "dir", dir)
	}

	return func() error {
		if err := os.Chdir(prev); err != nil {
			return zerr.With(errors.Join(domain.ErrWorkdirFailed, err), "dir", prev)
		}
		return nil
	}, nil
}
