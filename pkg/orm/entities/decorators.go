package entities

func ID(id string) EntityDecoratorFunc {
	return func(e *Entity) { e.id = id }
}

// A sets an attribute value. Attributes that the type does not declare are ignored, so
// the only error Set can return is dropped here.
func A(name string, value any) EntityDecoratorFunc {
	return func(e *Entity) { _ = e.Set(name, value) }
}

// One sets a to-one relationship. Undeclared names and to-many relationships are ignored.
func One(name string, target *Entity) EntityDecoratorFunc {
	return func(e *Entity) { _ = e.SetOne(name, target) }
}

// Many sets a to-many relationship. Undeclared names and to-one relationships are ignored.
func Many(name string, members ...*Entity) EntityDecoratorFunc {
	return func(e *Entity) { _ = e.SetMany(name, members...) }
}

func Meta(meta map[string]any) EntityDecoratorFunc {
	return func(e *Entity) { e.meta = meta }
}

func Extension(key string, value any) EntityDecoratorFunc {
	return func(e *Entity) { e.extensions[key] = value }
}

func Persisted() EntityDecoratorFunc {
	return func(e *Entity) { e.persisted = true }
}
