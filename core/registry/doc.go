// Package registry provides a small generic registry used to instantiate
// plugins by name. A family is defined by the abstract type it produces and
// the argument type its factories take; implementations register themselves
// under a string key, usually from an init function, and callers construct
// instances without knowing which implementations were compiled in.
//
// Example usage:
//
//	var readers = registry.New[io.Reader, map[string]any](registry.WithName("reader"))
//
//	func init() {
//	    readers.MustRegister("file", func(conf map[string]any) (io.Reader, error) {
//	        var c struct{ Path string `json:"path"` }
//	        if err := registry.Decode(conf, &c); err != nil {
//	            return nil, err
//	        }
//	        return os.Open(c.Path)
//	    })
//	}
//
//	r, err := readers.Construct("file", map[string]any{"path": "foo"})
//
// Duplicate keys keep the first factory; unknown keys yield ErrNotFound.
package registry
