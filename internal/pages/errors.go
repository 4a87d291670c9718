package pages

import (
	"github.com/carehive/ats-admin/internal/clients/ats"
	"github.com/pkg/errors"
)

// errorMessage turns a facade error into the text shown inside a banner. The
// server's own message is used verbatim when there is one; connectivity
// failures drop the transport detail.
func errorMessage(err error) string {

	var apiErr *ats.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}

	if errors.Is(err, ats.ErrConnectivity) {
		return ats.ErrConnectivity.Error()
	}

	return err.Error()
}
