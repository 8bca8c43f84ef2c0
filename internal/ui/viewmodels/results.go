package viewmodels

import (
	"fmt"

	"m3search/internal/ui/views"
)

// PlaceholderResults builds the static result list shown for a query.
// There is no search backend; only the query text is interpolated.
func PlaceholderResults(query string, count int) []views.Result {
	if query == "" || count <= 0 {
		return nil
	}

	results := make([]views.Result, count)
	for i := range results {
		results[i] = views.Result{
			Title:       fmt.Sprintf("Result %d for %q", i, query),
			Description: fmt.Sprintf("Description of result %d", i),
		}
	}
	return results
}
