package welcome

// GetOutput is the response wrapper for GET /.
type GetOutput struct {
	Body Welcome
}
