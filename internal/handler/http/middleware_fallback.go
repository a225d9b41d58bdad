package http

import (
	"net/http"

	"github.com/MKhiriev/go-prompt-tracker/internal/utils"
)

// notFound and methodNotAllowed keep chi's fallbacks on the JSON
// {"message": ...} shape used by every other error.
func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteMessage(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	utils.WriteMessage(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}
