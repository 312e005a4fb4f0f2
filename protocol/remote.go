package protocol

// Remote is a reference to a remote object: the object's interface type
// name and the URL it can be reached at.
type Remote struct {
	Type string
	URL  string
}

func (r Remote) RemoteType() string { return r.Type }
func (r Remote) RemoteURL() string  { return r.URL }
