package vertex

// Kind is the AST kind of a vertex, taken directly from the ingested
// document's node tag (see spec §3 and §6). It is a closed set.
type Kind int

const (
	Invalid Kind = iota
	Var
	Logic
	Always
	Assign
	AssignDly
	AssignAlias
	AssignW
	SrcReg
	DstReg
	SrcRegAlias
	DstRegAlias
	Port
	If
	Case
	CFunc
	While
	Initial
	Instance
	SenGate
	ReadMem
	JumpBlock
	Sformatf
	CStmt
)

var kindNames = map[Kind]string{
	Invalid:     "INVALID",
	Var:         "VAR",
	Logic:       "LOGIC",
	Always:      "ALWAYS",
	Assign:      "ASSIGN",
	AssignDly:   "ASSIGN_DLY",
	AssignAlias: "ASSIGN_ALIAS",
	AssignW:     "ASSIGN_W",
	SrcReg:      "SRC_REG",
	DstReg:      "DST_REG",
	SrcRegAlias: "SRC_REG_ALIAS",
	DstRegAlias: "DST_REG_ALIAS",
	Port:        "PORT",
	If:          "IF",
	Case:        "CASE",
	CFunc:       "C_FUNC",
	While:       "WHILE",
	Initial:     "INITIAL",
	Instance:    "INSTANCE",
	SenGate:     "SEN_GATE",
	ReadMem:     "READ_MEM",
	JumpBlock:   "JUMP_BLOCK",
	Sformatf:    "SFORMATF",
	CStmt:       "C_STMT",
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[name] = k
	}
	return m
}()

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "INVALID"
}

// KindFromTag maps a kind name as rendered by String (e.g. "ASSIGN_DLY")
// back to a Kind, returning Invalid for unrecognised names. Lowercase
// document node tags such as "assigndly" are not recognised.
func KindFromTag(tag string) Kind {
	if k, ok := kindsByName[tag]; ok {
		return k
	}
	return Invalid
}

// IsVariable reports whether a vertex of this kind is a variable (as
// opposed to a logic statement): VAR, PORT or any register variant.
func (k Kind) IsVariable() bool {
	switch k {
	case Var, SrcReg, DstReg, SrcRegAlias, DstRegAlias, Port:
		return true
	default:
		return false
	}
}

// Direction is the port direction of a variable.
type Direction int

const (
	DirNone Direction = iota
	DirInput
	DirOutput
	DirInout
)

func (d Direction) String() string {
	switch d {
	case DirInput:
		return "INPUT"
	case DirOutput:
		return "OUTPUT"
	case DirInout:
		return "INOUT"
	default:
		return "NONE"
	}
}

// DirectionFromTag maps the document's dir attribute values to a Direction.
func DirectionFromTag(tag string) Direction {
	switch tag {
	case "input":
		return DirInput
	case "output":
		return DirOutput
	case "inout":
		return DirInout
	default:
		return DirNone
	}
}
