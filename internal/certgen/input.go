package certgen

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/dmitrijs2005/warrantycert/internal/common"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// GetOwnerPassword prefers the configured value and otherwise prompts on
// the terminal without echo.
func GetOwnerPassword(configured string, w io.Writer) (string, error) {
	if configured != "" {
		return configured, nil
	}

	if _, err := fmt.Fprint(w, "Owner password: "); err != nil {
		return "", err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	defer wipe(pw)

	if len(pw) == 0 {
		return "", common.ErrMissingOwnerPassword
	}
	return string(pw), nil
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
