package ir

import "slices"

// DefaultMemory is the linear memory size a fresh module declares, in
// bytes. The 2015 dialect had no memory sections; tools of that era
// assumed 16MB.
const DefaultMemory uint32 = 16777216

// FunctionType is a named function signature. Identity is nominal:
// two signatures with the same shape but different names are distinct
// types.
type FunctionType struct {
	Name   Name
	Result Type
	Params []Type
}

// Equal reports whether ft and other are the same signature, name
// included.
func (ft *FunctionType) Equal(other *FunctionType) bool {
	if ft.Name != other.Name || ft.Result != other.Result {
		return false
	}
	return slices.Equal(ft.Params, other.Params)
}

// NameType pairs a local or parameter name with its value type.
type NameType struct {
	Name Name
	Type Type
}

// Function is a function definition. Params and Locals share one
// namespace; Body is the single root expression.
type Function struct {
	Name   Name
	Result Type
	Params []NameType
	Locals []NameType
	Body   Expression
}

// Import is a function imported from the embedder, addressed by a
// module/base name pair and carrying the signature it is called with.
type Import struct {
	Name     Name
	Module   Name
	Base     Name
	FuncType FunctionType
}

// Export exposes an internal function under an external name.
type Export struct {
	Name  Name
	Value Name
}

// Table is the indirect-call table: a dense list of function names
// addressed by index.
type Table struct {
	Names []Name
}

// Module is the top-level container. It references arena-owned
// expression trees through its functions but owns none of them;
// dropping a module does not release any nodes.
type Module struct {
	FunctionTypes map[Name]*FunctionType
	Imports       map[Name]*Import
	Exports       []*Export
	Table         Table
	Functions     []*Function
	Memory        uint32
}

// NewModule creates an empty module with the default memory size
func NewModule() *Module {
	return &Module{
		FunctionTypes: make(map[Name]*FunctionType),
		Imports:       make(map[Name]*Import),
		Memory:        DefaultMemory,
	}
}

// AddFunctionType registers ft under its name, replacing any previous
// registration.
func (m *Module) AddFunctionType(ft *FunctionType) {
	m.FunctionTypes[ft.Name] = ft
}

// AddImport registers imp under its name, replacing any previous
// registration.
func (m *Module) AddImport(imp *Import) {
	m.Imports[imp.Name] = imp
}

// AddExport appends an export
func (m *Module) AddExport(e *Export) {
	m.Exports = append(m.Exports, e)
}

// AddFunction appends a function definition
func (m *Module) AddFunction(f *Function) {
	m.Functions = append(m.Functions, f)
}

// FunctionTypeNames returns the registered signature names in sorted
// order. Map iteration is unordered; every deterministic consumer
// goes through this.
func (m *Module) FunctionTypeNames() []Name {
	names := make([]Name, 0, len(m.FunctionTypes))
	for name := range m.FunctionTypes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ImportNames returns the registered import names in sorted order
func (m *Module) ImportNames() []Name {
	names := make([]Name, 0, len(m.Imports))
	for name := range m.Imports {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
