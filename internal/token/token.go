package token

// Kind classifies a lexed token. The lexer is the only producer; every later
// stage treats tokens as read-only.
type Kind int

const (
	ILLEGAL Kind = iota
	EOF

	IDENT // identifiers, including dotted builtin names such as 차림.값
	JOSA  // grammatical particle written as a standalone word (을, 를, 로, ...)

	INT    // 123
	FLOAT  // 1.5
	STRING // "글"
	BLOCK  // {| raw template/formula body |}

	LPAREN   // (
	RPAREN   // )
	LBRACE   // {
	RBRACE   // }
	LBRACKET // [
	RBRACKET // ]
	COMMA    // ,
	COLON    // :
	ASSIGN   // = (argument pins; legacy as a statement)
	BIND     // <- (mutation)
	AT       // @ (unit / resource suffix)
	QUESTION // ? (pipe flow placeholder)

	PLUS    // +
	MINUS   // -
	STAR    // *
	SLASH   // / (division; josa separator inside parameter lists)
	PERCENT // %
	BANG    // !
	EQ      // ==
	NOT_EQ  // !=
	LT      // <
	LE      // <=
	GT      // >
	GE      // >=

	PIPE_LEGACY // |> (retired; kept so the parser can print a migration hint)

	KW_SEED     // 씨앗
	KW_MADANG   // 마당
	KW_IF       // 만약
	KW_ELSE     // 아니면 (also the default arm of 고름)
	KW_WHILE    // 동안 (postfix)
	KW_REPEAT   // 거듭
	KW_EACH     // 마다 (postfix)
	KW_CHOOSE   // 고름
	KW_WHEN     // 이면 (choose arm)
	KW_CONTRACT // 다짐
	KW_PRE      // 앞
	KW_POST     // 뒤
	KW_GUARD    // 지킴
	KW_DECL     // 갖춤
	KW_RETURN   // 돌려주기
	KW_PIPE     // 해서 (pipe-stage separator)
	KW_TRUE     // 참
	KW_FALSE    // 거짓
	KW_NONE     // 없음
	KW_AND      // 그리고
	KW_OR       // 또는
	KW_FROM     // 부터 (range)
	KW_TO       // 까지 (range)
	KW_OF       // 의 (field access)
	KW_OPT      // 선택 (optional parameter marker)
	KW_TEMPLATE // 글틀
	KW_FORMULA  // 셈틀
	KW_TIMES    // 번 (optional after a repeat count)
	KW_ROOTHIDE // 뿌리숨김 (strict write-visibility directive)
)

var kindNames = map[Kind]string{
	ILLEGAL:     "ILLEGAL",
	EOF:         "끝",
	IDENT:       "이름",
	JOSA:        "조사",
	INT:         "정수",
	FLOAT:       "실수",
	STRING:      "글",
	BLOCK:       "틀몸통",
	LPAREN:      "(",
	RPAREN:      ")",
	LBRACE:      "{",
	RBRACE:      "}",
	LBRACKET:    "[",
	RBRACKET:    "]",
	COMMA:       ",",
	COLON:       ":",
	ASSIGN:      "=",
	BIND:        "<-",
	AT:          "@",
	QUESTION:    "?",
	PLUS:        "+",
	MINUS:       "-",
	STAR:        "*",
	SLASH:       "/",
	PERCENT:     "%",
	BANG:        "!",
	EQ:          "==",
	NOT_EQ:      "!=",
	LT:          "<",
	LE:          "<=",
	GT:          ">",
	GE:          ">=",
	PIPE_LEGACY: "|>",
	KW_SEED:     "씨앗",
	KW_MADANG:   "마당",
	KW_IF:       "만약",
	KW_ELSE:     "아니면",
	KW_WHILE:    "동안",
	KW_REPEAT:   "거듭",
	KW_EACH:     "마다",
	KW_CHOOSE:   "고름",
	KW_WHEN:     "이면",
	KW_CONTRACT: "다짐",
	KW_PRE:      "앞",
	KW_POST:     "뒤",
	KW_GUARD:    "지킴",
	KW_DECL:     "갖춤",
	KW_RETURN:   "돌려주기",
	KW_PIPE:     "해서",
	KW_TRUE:     "참",
	KW_FALSE:    "거짓",
	KW_NONE:     "없음",
	KW_AND:      "그리고",
	KW_OR:       "또는",
	KW_FROM:     "부터",
	KW_TO:       "까지",
	KW_OF:       "의",
	KW_OPT:      "선택",
	KW_TEMPLATE: "글틀",
	KW_FORMULA:  "셈틀",
	KW_TIMES:    "번",
	KW_ROOTHIDE: "뿌리숨김",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "Kind(?)"
}

// Keywords maps a raw word to its keyword kind. A word absent from this
// table (and from Josa) lexes as IDENT.
var Keywords = map[string]Kind{
	"씨앗":   KW_SEED,
	"마당":   KW_MADANG,
	"만약":   KW_IF,
	"아니면":  KW_ELSE,
	"동안":   KW_WHILE,
	"거듭":   KW_REPEAT,
	"마다":   KW_EACH,
	"고름":   KW_CHOOSE,
	"이면":   KW_WHEN,
	"다짐":   KW_CONTRACT,
	"앞":    KW_PRE,
	"뒤":    KW_POST,
	"지킴":   KW_GUARD,
	"갖춤":   KW_DECL,
	"돌려주기": KW_RETURN,
	"해서":   KW_PIPE,
	"참":    KW_TRUE,
	"거짓":   KW_FALSE,
	"없음":   KW_NONE,
	"그리고":  KW_AND,
	"또는":   KW_OR,
	"부터":   KW_FROM,
	"까지":   KW_TO,
	"의":    KW_OF,
	"선택":   KW_OPT,
	"글틀":   KW_TEMPLATE,
	"셈틀":   KW_FORMULA,
	"번":    KW_TIMES,
	"뿌리숨김": KW_ROOTHIDE,
}

// Josa is the closed set of grammatical particles the lexer classifies.
// 의 is deliberately absent: it is the field-access keyword instead.
var Josa = map[string]bool{
	"이":  true,
	"가":  true,
	"을":  true,
	"를":  true,
	"로":  true,
	"으로": true,
	"에":  true,
	"에서": true,
	"에게": true,
	"와":  true,
	"과":  true,
	"만큼": true,
	"보다": true,
}

// Token is one lexed unit of source text. Immutable once produced.
type Token struct {
	Kind Kind
	Raw  string
	Span Span
}

func (t Token) Is(k Kind) bool { return t.Kind == k }

func (t Token) String() string {
	if t.Raw == "" {
		return t.Kind.String()
	}
	return t.Raw
}
