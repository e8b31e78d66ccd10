package uniq

// SourceKind says where a run's input comes from.
type SourceKind int

const (
	// SourceUsage means there is no input to read: no path was given and
	// standard input is an interactive terminal.
	SourceUsage SourceKind = iota
	// SourceStdin means input is piped to standard input.
	SourceStdin
	// SourceFile means input is read from a named file.
	SourceFile
)

func (k SourceKind) String() string {
	switch k {
	case SourceStdin:
		return "stdin"
	case SourceFile:
		return "file"
	default:
		return "usage"
	}
}

// Source is the resolved input of a run.
type Source struct {
	Kind SourceKind
	// Path is the file path as given, when Kind is SourceFile.
	Path string
}

// Label returns the name under which the source appears in the verbose
// header: the path as given for a file, or StdinLabel.
func (s Source) Label() string {
	if s.Kind == SourceFile {
		return s.Path
	}
	return StdinLabel
}

// ResolveSource decides where input comes from, given the command's
// positional arguments. If there is one, it names the file to read, even when
// it is empty. Otherwise standard input is read, unless interactive reports
// that it is a terminal, in which case there is nothing to read and the
// caller should show usage instead. A nil interactive is treated as never
// interactive.
func ResolveSource(args []string, interactive func() bool) Source {
	if len(args) > 0 {
		return Source{Kind: SourceFile, Path: args[0]}
	}
	if interactive != nil && interactive() {
		return Source{Kind: SourceUsage}
	}
	return Source{Kind: SourceStdin}
}
