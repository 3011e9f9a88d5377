package extract

import (
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/c"
	"github.com/smacker/go-tree-sitter/cpp"
	"github.com/smacker/go-tree-sitter/css"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/html"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/rust"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"mozuku/internal/mask"
)

// Language identifies a supported document language. Values match the
// LSP languageId strings the editor sends.
type Language string

const (
	Japanese        Language = "japanese"
	Python          Language = "python"
	JavaScript      Language = "javascript"
	TypeScript      Language = "typescript"
	TypeScriptReact Language = "typescriptreact"
	JavaScriptReact Language = "javascriptreact"
	C               Language = "c"
	Cpp             Language = "cpp"
	Rust            Language = "rust"
	Go              Language = "go"
	Java            Language = "java"
	HTML            Language = "html"
	CSS             Language = "css"
	LaTeX           Language = "latex"
)

var languages = map[string]Language{
	"japanese":        Japanese,
	"python":          Python,
	"javascript":      JavaScript,
	"typescript":      TypeScript,
	"typescriptreact": TypeScriptReact,
	"javascriptreact": JavaScriptReact,
	"c":               C,
	"cpp":             Cpp,
	"rust":            Rust,
	"go":              Go,
	"java":            Java,
	"html":            HTML,
	"css":             CSS,
	"latex":           LaTeX,
}

// FromLanguageID resolves an editor languageId. The set is closed;
// anything else is unsupported and analyzed as plain text.
func FromLanguageID(id string) (Language, bool) {
	lang, ok := languages[id]
	return lang, ok
}

// extensions maps file extensions to languages for the CLI, which has
// no editor to hand it a languageId.
var extensions = map[string]Language{
	".py":   Python,
	".js":   JavaScript,
	".jsx":  JavaScriptReact,
	".ts":   TypeScript,
	".tsx":  TypeScriptReact,
	".c":    C,
	".h":    C,
	".cc":   Cpp,
	".cpp":  Cpp,
	".cxx":  Cpp,
	".hpp":  Cpp,
	".rs":   Rust,
	".go":   Go,
	".java": Java,
	".html": HTML,
	".htm":  HTML,
	".css":  CSS,
	".tex":  LaTeX,
	".txt":  Japanese,
}

// FromPath guesses the language from the file extension.
func FromPath(path string) (Language, bool) {
	lang, ok := extensions[strings.ToLower(filepath.Ext(path))]
	return lang, ok
}

// CommentStyle returns the marker style Sanitize should blank for
// this language. Languages whose markers carry no analyzable weight
// (markup, the react dialects) keep their comment text as is.
func (l Language) CommentStyle() mask.Style {
	switch l {
	case Python:
		return mask.StyleHash
	case JavaScript, TypeScript, C, Cpp, Java, Go, Rust:
		return mask.StyleSlash
	case LaTeX:
		return mask.StylePercent
	}
	return mask.StyleNone
}

// grammar returns the tree-sitter grammar, or nil when the language is
// parsed by hand (latex) or not parsed at all (japanese).
func (l Language) grammar() *sitter.Language {
	switch l {
	case Python:
		return python.GetLanguage()
	case JavaScript, JavaScriptReact:
		return javascript.GetLanguage()
	case TypeScript:
		return typescript.GetLanguage()
	case TypeScriptReact:
		return tsx.GetLanguage()
	case C:
		return c.GetLanguage()
	case Cpp:
		return cpp.GetLanguage()
	case Rust:
		return rust.GetLanguage()
	case Go:
		return golang.GetLanguage()
	case Java:
		return java.GetLanguage()
	case HTML:
		return html.GetLanguage()
	case CSS:
		return css.GetLanguage()
	}
	return nil
}

var (
	anyComment       = map[string]bool{"comment": true, "line_comment": true, "block_comment": true}
	lineBlockComment = map[string]bool{"line_comment": true, "block_comment": true}
	plainComment     = map[string]bool{"comment": true}
)

// commentNodeTypes returns the node type names that carry comments in
// this language's grammar.
func (l Language) commentNodeTypes() map[string]bool {
	switch l {
	case Python, Go, HTML, CSS:
		return plainComment
	case JavaScript, JavaScriptReact, TypeScript, TypeScriptReact, C, Cpp:
		return anyComment
	case Rust, Java:
		return lineBlockComment
	}
	return nil
}
