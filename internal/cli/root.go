package cli

// Context carries what commands need to run.
type Context struct {
	// Page is the location hash the site opens with.
	Page string
}
