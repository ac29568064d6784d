package diffbot

import "fmt"

// Operation is one supported Diffbot API endpoint.
type Operation string

// Supported operations.
const (
	// Analyze lets Diffbot pick the right extraction API for the page.
	Analyze Operation = "analyze"
	// Article extracts clean text, images and metadata from article pages.
	Article Operation = "article"
	// Frontpage extracts the sections and items of a site's front page.
	Frontpage Operation = "frontpage"
	// Image extracts the primary images of a page.
	Image Operation = "image"
	// Product extracts product details from shopping and e-commerce pages.
	Product Operation = "product"
	// Discussion extracts threads and posts from forum and comment pages.
	Discussion Operation = "discussion"
	// Video extracts video metadata from video pages.
	Video Operation = "video"
	// Search queries a Diffbot collection instead of a target URL.
	Search Operation = "search"
)

type endpoint struct {
	path string

	// needsTarget marks operations that run against a caller-supplied URL.
	// Search is the only operation without it.
	needsTarget bool
}

var endpoints = map[Operation]endpoint{
	Analyze:    {path: "analyze", needsTarget: true},
	Article:    {path: "article", needsTarget: true},
	Frontpage:  {path: "frontpage", needsTarget: true},
	Image:      {path: "image", needsTarget: true},
	Product:    {path: "product", needsTarget: true},
	Discussion: {path: "discussion", needsTarget: true},
	Video:      {path: "video", needsTarget: true},
	Search:     {path: "search"},
}

// Path returns the operation's path segment under the versioned API root.
// It panics on an operation missing from the endpoint table: that is a
// defect in this package, not a runtime condition.
func (op Operation) Path() string {
	e, ok := endpoints[op]
	if !ok {
		panic(fmt.Sprintf("diffbot: unmapped operation %q", op))
	}
	return e.path
}

// IsValid reports whether op is one of the supported operations.
func (op Operation) IsValid() bool {
	_, ok := endpoints[op]
	return ok
}

func (op Operation) String() string {
	return string(op)
}

// Error codes returned by the Diffbot API, see
// https://www.diffbot.com/dev/docs/error/ for the full list.
const (
	// CodeUnauthorizedToken means the token is not authorized.
	CodeUnauthorizedToken = 401

	// CodePageNotFound means the requested page could not be found.
	CodePageNotFound = 404

	// CodeTokenThrottled means the token has exceeded the allowed number
	// of calls or has been throttled for API abuse.
	CodeTokenThrottled = 429

	// CodeProcessingError means Diffbot failed to process the page.
	// Specific information is returned in the error message.
	CodeProcessingError = 500
)
