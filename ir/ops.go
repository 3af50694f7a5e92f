package ir

// Operator enumerations for the computational node kinds. Each set is
// closed. String returns the diagnostic name and is total; the text
// mnemonics live in package wat and are deliberately partial where
// the dialect is.

// UnaryOp selects the operation of a Unary node
type UnaryOp uint8

const (
	// integer
	Clz UnaryOp = iota
	Ctz
	Popcnt
	// floating point
	Neg
	Abs
	Ceil
	Floor
	Trunc
	Nearest
	Sqrt
)

var unaryNames = [...]string{
	"Clz", "Ctz", "Popcnt",
	"Neg", "Abs", "Ceil", "Floor", "Trunc", "Nearest", "Sqrt",
}

func (op UnaryOp) String() string {
	if int(op) < len(unaryNames) {
		return unaryNames[op]
	}
	return "unknown"
}

// BinaryOp selects the operation of a Binary node
type BinaryOp uint8

const (
	// int or float
	Add BinaryOp = iota
	Sub
	Mul
	// int
	DivS
	DivU
	RemS
	RemU
	And
	Or
	Xor
	Shl
	ShrU
	ShrS
	// float
	Div
	CopySign
	Min
	Max
)

var binaryNames = [...]string{
	"Add", "Sub", "Mul",
	"DivS", "DivU", "RemS", "RemU", "And", "Or", "Xor", "Shl", "ShrU", "ShrS",
	"Div", "CopySign", "Min", "Max",
}

func (op BinaryOp) String() string {
	if int(op) < len(binaryNames) {
		return binaryNames[op]
	}
	return "unknown"
}

// RelationalOp selects the operation of a Compare node
type RelationalOp uint8

const (
	// int or float
	Eq RelationalOp = iota
	Ne
	// int
	LtS
	LtU
	LeS
	LeU
	GtS
	GtU
	GeS
	GeU
	// float
	Lt
	Le
	Gt
	Ge
)

var relationalNames = [...]string{
	"Eq", "Ne",
	"LtS", "LtU", "LeS", "LeU", "GtS", "GtU", "GeS", "GeU",
	"Lt", "Le", "Gt", "Ge",
}

func (op RelationalOp) String() string {
	if int(op) < len(relationalNames) {
		return relationalNames[op]
	}
	return "unknown"
}

// ConvertOp selects the operation of a Convert node
type ConvertOp uint8

const (
	ExtendSInt32 ConvertOp = iota
	ExtendUInt32
	WrapInt64
	TruncSFloat32
	TruncUFloat32
	TruncSFloat64
	TruncUFloat64
	ReinterpretFloat
	ConvertSInt32
	ConvertUInt32
	ConvertSInt64
	ConvertUInt64
	PromoteFloat32
	DemoteFloat64
	ReinterpretInt
)

var convertNames = [...]string{
	"ExtendSInt32", "ExtendUInt32", "WrapInt64",
	"TruncSFloat32", "TruncUFloat32", "TruncSFloat64", "TruncUFloat64",
	"ReinterpretFloat",
	"ConvertSInt32", "ConvertUInt32", "ConvertSInt64", "ConvertUInt64",
	"PromoteFloat32", "DemoteFloat64", "ReinterpretInt",
}

func (op ConvertOp) String() string {
	if int(op) < len(convertNames) {
		return convertNames[op]
	}
	return "unknown"
}

// HostOp selects the operation of a Host node
type HostOp uint8

const (
	PageSize HostOp = iota
	MemorySize
	GrowMemory
	HasFeature
)

var hostNames = [...]string{
	"PageSize", "MemorySize", "GrowMemory", "HasFeature",
}

func (op HostOp) String() string {
	if int(op) < len(hostNames) {
		return hostNames[op]
	}
	return "unknown"
}
