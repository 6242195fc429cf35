package failopen

// Reporter receives every failure a Policy converts into its default.
type Reporter interface {
	ReportFailure(component string, category Category, err error)
}

// Policy declares the safe value a collaborator degrades to. Resolve is the
// single place where an error is replaced by that value.
type Policy[T any] struct {
	Component string
	Default   func() T
	Reporter  Reporter
}

// Resolve returns value when err is nil, otherwise reports err and returns the default.
func (p Policy[T]) Resolve(value T, err error) T {
	if err == nil {
		return value
	}
	if p.Reporter != nil {
		p.Reporter.ReportFailure(p.Component, CategoryOf(err), err)
	}
	return p.Default()
}

// ReporterFunc adapts a plain function to Reporter.
type ReporterFunc func(component string, category Category, err error)

func (f ReporterFunc) ReportFailure(component string, category Category, err error) {
	f(component, category, err)
}
