package toolchain

import "sort"

// Flags is a set of command line flags, keyed by flag name without
// the leading dash. Flags are iterated in the order they were first set.
type Flags map[string]*flag

type flag struct {
	values   []string
	isToggle bool
	order    int
}

// Set sets the values of the given flag, replacing any previous values.
// Setting a flag with no values is a no-op.
func (f Flags) Set(name string, values ...string) {
	if len(values) == 0 {
		return
	}
	f.put(name, &flag{values: append([]string(nil), values...)})
}

// Toggle sets a flag that takes no value.
func (f Flags) Toggle(name string) {
	f.put(name, &flag{isToggle: true})
}

// Delete removes the flag.
func (f Flags) Delete(name string) {
	delete(f, name)
}

// Has reports whether the flag is set.
func (f Flags) Has(name string) bool {
	_, ok := f[name]
	return ok
}

// Get returns the values of the flag. Toggles have no values.
func (f Flags) Get(name string) []string {
	if fl, ok := f[name]; ok {
		return fl.values
	}
	return nil
}

// Merge copies all flags from other into f, overriding flags with the same name.
func (f Flags) Merge(other Flags) {
	other.Range(func(name string, values []string, isToggle bool) {
		if isToggle {
			f.Toggle(name)
		} else {
			f.Set(name, values...)
		}
	})
}

// Range calls fn for each flag in the order the flags were first set.
func (f Flags) Range(fn func(name string, values []string, isToggle bool)) {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return f[names[i]].order < f[names[j]].order })

	for _, name := range names {
		fl := f[name]
		fn(name, fl.values, fl.isToggle)
	}
}

func (f Flags) put(name string, fl *flag) {
	if prev, ok := f[name]; ok {
		fl.order = prev.order
	} else {
		fl.order = f.nextOrder()
	}
	f[name] = fl
}

func (f Flags) nextOrder() int {
	next := 0
	for _, fl := range f {
		if fl.order >= next {
			next = fl.order + 1
		}
	}
	return next
}
