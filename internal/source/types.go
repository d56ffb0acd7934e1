package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags records how the on-disk bytes differ from File.Content.
	FileFlags uint8
)

const (
	// FileVirtual marks a file that was not read from disk (stdin, tests).
	FileVirtual FileFlags = 1 << iota
	// FileHadBOM means a UTF-8 byte order mark was stripped on load.
	FileHadBOM
	// FileNormalizedCRLF means CRLF line endings were rewritten to LF on load.
	FileNormalizedCRLF
)

// File captures metadata and normalized content for a single source file.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // offsets of every '\n'
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based, bytes
}
