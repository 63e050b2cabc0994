package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/renamer/pkg/errors"
)

// Confirm asks a yes/no question on out and reads the answer from in.
// The default answer is no.
func Confirm(question string, in io.Reader, out io.Writer) (bool, error) {
	fmt.Fprintf(out, "%s [y/N]: ", question)

	var response string
	_, err := fmt.Fscanln(in, &response)
	if err != nil && err.Error() != "unexpected newline" && err != io.EOF {
		return false, errors.Wrap(err, errors.ErrReadInput, "failed to read user input")
	}

	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes", nil
}
