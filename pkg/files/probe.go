package files

// Probe is a File built from caller-supplied probes. A nil probe
// answers false.
type Probe struct {
	Name     string
	Present  func() bool
	Readable func() bool
	Writable func() bool
	Dir      func() bool
}

// Path returns the probe name.
func (p *Probe) Path() string { return p.Name }

// Exists calls the Present probe.
func (p *Probe) Exists() bool { return call(p.Present) }

// CanRead calls the Readable probe.
func (p *Probe) CanRead() bool { return call(p.Readable) }

// CanWrite calls the Writable probe.
func (p *Probe) CanWrite() bool { return call(p.Writable) }

// IsDir calls the Dir probe.
func (p *Probe) IsDir() bool { return call(p.Dir) }

// String returns the path, for failure messages.
func (p *Probe) String() string { return p.Name }

// Fixed returns a probe that always answers v.
func Fixed(v bool) func() bool {
	return func() bool { return v }
}

func call(probe func() bool) bool {
	return probe != nil && probe()
}
