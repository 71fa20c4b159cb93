package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"cxlint/internal/diag"
	"cxlint/internal/lexer"
	"cxlint/internal/source"
	"cxlint/internal/token"
)

// testReporter собирает все диагностики, полученные от лексера
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

func (r *testReporter) ErrorMessages() []string {
	messages := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		messages = append(messages, fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message))
	}
	return messages
}

// makeTestLexer создаёт лексер для тестовой строки
func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.cpp", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	return lx, reporter
}

// tokenizeString прогоняет всю строку через Tokenize
func tokenizeString(t *testing.T, input string) ([]token.Token, error) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.cpp", []byte(input))
	file := fs.Get(fileID)

	var tokens []token.Token
	err := lexer.Tokenize(file, lexer.Options{Reporter: diag.NopReporter{}}, &tokens)
	return tokens, err
}

// expectTokens проверяет последовательность токенов (без EOF)
func expectTokens(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	tokens, err := tokenizeString(t, input)
	if err != nil {
		t.Fatalf("unexpected error: %v\nInput: %q", err, input)
	}
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != token.EOF {
		t.Fatalf("token stream does not end with EOF\nInput: %q", input)
	}
	tokens = tokens[:len(tokens)-1]

	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d\nInput: %q\nTokens: %s",
			len(expected), len(tokens), input, tokensToString(tokens))
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("Token %d: expected %v, got %v (text: %q)",
				i, expected[i], tok.Kind, tok.Text)
		}
	}
}

// expectSingleToken проверяет, что вход создаёт ровно один токен
func expectSingleToken(t *testing.T, input string, expectedKind token.Kind, expectedText string) {
	t.Helper()
	lx, reporter := makeTestLexer(input)
	tok, err := lx.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v (%v)", err, reporter.ErrorMessages())
	}
	if tok.Kind != expectedKind {
		t.Errorf("Expected kind %v, got %v", expectedKind, tok.Kind)
	}
	if tok.Text != expectedText {
		t.Errorf("Expected text %q, got %q", expectedText, tok.Text)
	}
}

func expectError(t *testing.T, input string, code diag.Code) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.cpp", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{}
	var tokens []token.Token
	err := lexer.Tokenize(file, lexer.Options{Reporter: reporter}, &tokens)
	if err == nil {
		t.Fatalf("expected an error for %q, got %d tokens", input, len(tokens))
	}
	lexErr, ok := err.(*lexer.Error)
	if !ok {
		t.Fatalf("expected *lexer.Error, got %T: %v", err, err)
	}
	if lexErr.Code != code {
		t.Errorf("expected code %s, got %s", code.ID(), lexErr.Code.ID())
	}
	if len(tokens) != 0 {
		t.Errorf("token slice must be empty after a fatal error, got %d", len(tokens))
	}
	if len(reporter.diagnostics) == 0 {
		t.Errorf("fatal error was not reported")
	}
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)", tok.Kind, tok.Text)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ====== Идентификаторы и ключевые слова ======

func TestIdentifiers(t *testing.T) {
	tests := []struct {
		input string
		text  string
	}{
		{"foo", "foo"},
		{"_bar", "_bar"},
		{"__test", "__test"},
		{"x123", "x123"},
		{"$alias", "$alias"},
		{"@obj", "@obj"},
		{"mixed$@_1", "mixed$@_1"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, token.Ident, tt.text)
		})
	}
}

func TestKeywords(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"int", token.KwInt},
		{"class", token.KwClass},
		{"virtual", token.KwVirtual},
		{"constexpr", token.KwConstexpr},
		{"nullptr", token.KwNullptr},
		{"static_assert", token.KwStaticAssert},
		{"and_eq", token.KwAndEq},
		{"xor_eq", token.KwXorEq},
		{"alignas", token.KwAlignas},
		{"thread_local", token.KwThreadLocal},
		{"wchar_t", token.KwWcharT},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lx, _ := makeTestLexer(tt.input)
			tok, err := lx.Next()
			if err != nil {
				t.Fatal(err)
			}
			if tok.Kind != tt.kind {
				t.Errorf("Expected %v, got %v", tt.kind, tok.Kind)
			}
			if !tok.IsKeyword() {
				t.Errorf("IsKeyword() = false for %q", tt.input)
			}
		})
	}
}

func TestKeywords_CaseSensitive(t *testing.T) {
	// Int, CLASS и т.п. — обычные идентификаторы
	for _, input := range []string{"Int", "CLASS", "Virtual", "iF"} {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, token.Ident, input)
		})
	}
}

func TestKeywordPrefixIsIdent(t *testing.T) {
	// maximal munch: "intx" никогда не распадается на "int" + "x"
	expectSingleToken(t, "intx", token.Ident, "intx")
	expectSingleToken(t, "classes", token.Ident, "classes")
	expectSingleToken(t, "doubled", token.Ident, "doubled")
}

// ====== Числа ======

func TestNumbers(t *testing.T) {
	tests := []string{
		"0",
		"42",
		"1234567890",
		"3.14",
		"1.",
		".5",
		"1e10",
		"1e+10",
		"1e-10",
		"1E5",
		"0x1F",
		"0XABCDEF",
		"0x1p+3f",
		"0x1.8p3",
		"100ULL",
		"1.5f",
		"2.0L",
		"42u",
		"0x10ull",
		"6.02e23",
	}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, token.Number, input)
		})
	}
}

func TestNumber_SignBelongsToExponentOnly(t *testing.T) {
	// "1+2": плюс после цифры — отдельный токен
	expectTokens(t, "1+2", []token.Kind{token.Number, token.Plus, token.Number})
	// "1e+2" остаётся одним литералом
	expectTokens(t, "1e+2", []token.Kind{token.Number})
	// суффикс f после e+2 не обрывает литерал
	expectTokens(t, "0x1p+3f", []token.Kind{token.Number})
	// в десятичном литерале p не продолжает число
	expectTokens(t, "1p", []token.Kind{token.Number, token.Ident})
}

func TestNumber_HexLettersNeedPrefix(t *testing.T) {
	// "1f" — это число c суффиксом f, а "1a" — число и идентификатор
	expectTokens(t, "1f", []token.Kind{token.Number})
	expectTokens(t, "1a", []token.Kind{token.Number, token.Ident})
	expectTokens(t, "0x1a", []token.Kind{token.Number})
}

func TestNumber_DotOnce(t *testing.T) {
	// вторая точка начинает новый токен
	expectTokens(t, "1.2.3", []token.Kind{token.Number, token.Number})
}

func TestLeadingDotNumber(t *testing.T) {
	expectTokens(t, ".5+x", []token.Kind{token.Number, token.Plus, token.Ident})
}

// ====== Строки и символы ======

func TestCharLiterals(t *testing.T) {
	tests := []string{
		`'a'`,
		`'\n'`,
		`'\''`,
		`'\\'`,
		`'\x41'`,
	}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, token.CharLit, input)
		})
	}
}

func TestStringLiterals(t *testing.T) {
	tests := []string{
		`"hello"`,
		`""`,
		`"with \"escape\""`,
		`"tab\there"`,
		`"trailing backslash \\"`,
	}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, token.StringLit, input)
		})
	}
}

func TestStringLiteral_MultilineCountsLines(t *testing.T) {
	input := "\"a\nb\"\nx"
	tokens, err := tokenizeString(t, input)
	if err != nil {
		t.Fatal(err)
	}
	// строка начинается на строке 1, x — на строке 3
	if tokens[0].Kind != token.StringLit || tokens[0].Line != 1 {
		t.Errorf("string literal: kind=%v line=%d", tokens[0].Kind, tokens[0].Line)
	}
	if tokens[1].Kind != token.Ident || tokens[1].Line != 3 {
		t.Errorf("ident after literal: kind=%v line=%d", tokens[1].Kind, tokens[1].Line)
	}
}

func TestUnterminated(t *testing.T) {
	expectError(t, `"never closed`, diag.LexUnterminatedConstruct)
	expectError(t, `'x`, diag.LexUnterminatedConstruct)
	expectError(t, "/* unterminated", diag.LexUnterminatedConstruct)
	// escape перед EOF не закрывает литерал
	expectError(t, `"ends with \`, diag.LexUnterminatedConstruct)
}

// ====== Комментарии и trivia ======

func TestLineCommentBecomesTrivia(t *testing.T) {
	tokens, err := tokenizeString(t, "// note\nx")
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 2 {
		t.Fatalf("expected ident + EOF, got %s", tokensToString(tokens))
	}
	if tokens[0].Kind != token.Ident || tokens[0].Text != "x" {
		t.Fatalf("expected x, got %v(%q)", tokens[0].Kind, tokens[0].Text)
	}
	if tokens[0].Leading.Text != "// note\n" {
		t.Errorf("leading trivia = %q", tokens[0].Leading.Text)
	}
	if tokens[0].Line != 2 {
		t.Errorf("line = %d, want 2", tokens[0].Line)
	}
}

func TestBlockCommentBecomesTrivia(t *testing.T) {
	tokens, err := tokenizeString(t, "/* one\ntwo */ y")
	if err != nil {
		t.Fatal(err)
	}
	if tokens[0].Kind != token.Ident || tokens[0].Text != "y" {
		t.Fatalf("got %s", tokensToString(tokens))
	}
	if tokens[0].Leading.Text != "/* one\ntwo */ " {
		t.Errorf("leading trivia = %q", tokens[0].Leading.Text)
	}
	if tokens[0].Line != 2 {
		t.Errorf("line = %d, want 2", tokens[0].Line)
	}
}

func TestLineCommentBackslashContinuation(t *testing.T) {
	// backslash перед переводом строки продолжает однострочный
	// комментарий на следующую строку
	tokens, err := tokenizeString(t, "// first \\\nstill comment\nx")
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 2 || tokens[0].Text != "x" {
		t.Fatalf("expected only x, got %s", tokensToString(tokens))
	}
	if tokens[0].Line != 3 {
		t.Errorf("line = %d, want 3", tokens[0].Line)
	}
}

func TestLineCommentAtEOF(t *testing.T) {
	tokens, err := tokenizeString(t, "x // trailing")
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 2 || tokens[1].Kind != token.EOF {
		t.Fatalf("got %s", tokensToString(tokens))
	}
	if tokens[1].Leading.Text != " // trailing" {
		t.Errorf("EOF leading trivia = %q", tokens[1].Leading.Text)
	}
}

// ====== Операторы ======

func TestOperators_MaximalMunch(t *testing.T) {
	tests := []struct {
		input    string
		expected []token.Kind
	}{
		{"->*", []token.Kind{token.ArrowStar}},
		{"->", []token.Kind{token.Arrow}},
		{"-", []token.Kind{token.Minus}},
		{"--", []token.Kind{token.Decrement}},
		{"-=", []token.Kind{token.MinusAssign}},
		{"<<=", []token.Kind{token.ShlAssign}},
		{"<<", []token.Kind{token.Shl}},
		{"<=", []token.Kind{token.LtEq}},
		{">>=", []token.Kind{token.ShrAssign}},
		{">>", []token.Kind{token.Shr}},
		{"::", []token.Kind{token.ColonColon}},
		{":", []token.Kind{token.Colon}},
		{"&&", []token.Kind{token.AndAnd}},
		{"&=", []token.Kind{token.AmpAssign}},
		{"||", []token.Kind{token.OrOr}},
		{"|=", []token.Kind{token.PipeAssign}},
		{"++", []token.Kind{token.Increment}},
		{"+=", []token.Kind{token.PlusAssign}},
		{"==", []token.Kind{token.EqEq}},
		{"!=", []token.Kind{token.BangEq}},
		{"^=", []token.Kind{token.CaretAssign}},
		{"*=", []token.Kind{token.StarAssign}},
		{"%=", []token.Kind{token.PercentAssign}},
		{"/=", []token.Kind{token.SlashAssign}},
		{"/", []token.Kind{token.Slash}},
		{".*", []token.Kind{token.DotStar}},
		{"...", []token.Kind{token.Ellipsis}},
		{"..", []token.Kind{token.Dot, token.Dot}},
		{".", []token.Kind{token.Dot}},
		{"~!", []token.Kind{token.Tilde, token.Bang}},
		{"()[]{}", []token.Kind{token.LParen, token.RParen, token.LBracket, token.RBracket, token.LBrace, token.RBrace}},
		{"a->b", []token.Kind{token.Ident, token.Arrow, token.Ident}},
		{"x<<=y", []token.Kind{token.Ident, token.ShlAssign, token.Ident}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectTokens(t, tt.input, tt.expected)
		})
	}
}

// ====== Препроцессор ======

func TestPreprocessorDirectives(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
		text  string
	}{
		{"#include <vector>", token.PpInclude, "#include"},
		{"#define FOO 1", token.PpDefine, "#define"},
		{"# define FOO", token.PpDefine, "# define"},
		{"#\tdefine FOO", token.PpDefine, "#\tdefine"},
		{"#undef FOO", token.PpUndef, "#undef"},
		{"#if 0", token.PpIf, "#if"},
		{"#ifdef FOO", token.PpIfdef, "#ifdef"},
		{"#ifndef FOO", token.PpIfndef, "#ifndef"},
		{"#else", token.PpElse, "#else"},
		{"#endif", token.PpEndif, "#endif"},
		{"#pragma once", token.PpPragma, "#pragma"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lx, _ := makeTestLexer(tt.input)
			tok, err := lx.Next()
			if err != nil {
				t.Fatal(err)
			}
			if tok.Kind != tt.kind {
				t.Errorf("kind = %v, want %v", tok.Kind, tt.kind)
			}
			if tok.Text != tt.text {
				t.Errorf("text = %q, want %q", tok.Text, tt.text)
			}
			if !tok.IsPreprocessor() {
				t.Errorf("IsPreprocessor() = false")
			}
		})
	}
}

func TestPreprocessor_DefineThenIdent(t *testing.T) {
	tokens, err := tokenizeString(t, "#define FOO")
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 3 {
		t.Fatalf("got %s", tokensToString(tokens))
	}
	if tokens[0].Kind != token.PpDefine || tokens[0].Text != "#define" {
		t.Errorf("directive: %v(%q)", tokens[0].Kind, tokens[0].Text)
	}
	if tokens[1].Kind != token.Ident || tokens[1].Text != "FOO" {
		t.Errorf("ident: %v(%q)", tokens[1].Kind, tokens[1].Text)
	}
}

func TestPreprocessor_LongestMatchWins(t *testing.T) {
	// ifdef и ifndef не должны распознаваться как if
	expectTokens(t, "#ifdef A\n#endif\n", []token.Kind{token.PpIfdef, token.Ident, token.PpEndif})
	expectTokens(t, "#ifndef A\n#endif\n", []token.Kind{token.PpIfndef, token.Ident, token.PpEndif})
}

func TestPreprocessor_ErrorCapturesLine(t *testing.T) {
	tokens, err := tokenizeString(t, "#error something bad\nx")
	if err != nil {
		t.Fatal(err)
	}
	if tokens[0].Kind != token.PpError {
		t.Fatalf("got %s", tokensToString(tokens))
	}
	if tokens[0].Text != "#error something bad" {
		t.Errorf("text = %q", tokens[0].Text)
	}
}

func TestPreprocessor_WarningIsErrorKind(t *testing.T) {
	tokens, err := tokenizeString(t, "#warning look out\n")
	if err != nil {
		t.Fatal(err)
	}
	if tokens[0].Kind != token.PpError || tokens[0].Text != "#warning look out" {
		t.Fatalf("got %s", tokensToString(tokens))
	}
}

func TestPreprocessor_ErrorNeedsNewline(t *testing.T) {
	expectError(t, "#error no newline", diag.LexUnterminatedConstruct)
	expectError(t, "#warning no newline", diag.LexUnterminatedConstruct)
}

func TestPreprocessor_LineWithoutNewline(t *testing.T) {
	// #line без перевода строки тянется до конца файла
	tokens, err := tokenizeString(t, "#line 42")
	if err != nil {
		t.Fatal(err)
	}
	if tokens[0].Kind != token.PpLine || tokens[0].Text != "#line 42" {
		t.Fatalf("got %s", tokensToString(tokens))
	}
}

func TestHashAndPaste(t *testing.T) {
	expectTokens(t, "a##b", []token.Kind{token.Ident, token.HashHash, token.Ident})
	// elif не входит в таблицу директив: # и идентификатор
	expectTokens(t, "#elif A\n", []token.Kind{token.Hash, token.Ident, token.Ident})
	// одиночный # внутри тела макроса
	tokens, err := tokenizeString(t, "# a")
	if err != nil {
		t.Fatal(err)
	}
	if tokens[0].Kind != token.Hash || tokens[0].Text != "#" {
		t.Fatalf("got %s", tokensToString(tokens))
	}
	// пробел после # уходит в trivia следующего токена
	if tokens[1].Leading.Text != " " {
		t.Errorf("leading = %q", tokens[1].Leading.Text)
	}
}

// ====== Ошибки ======

func TestMisplacedBackslash(t *testing.T) {
	expectError(t, `a \ b`, diag.LexMisplacedBackslash)
}

func TestBackslashNewlineIsTrivia(t *testing.T) {
	tokens, err := tokenizeString(t, "a \\\nb")
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 3 {
		t.Fatalf("got %s", tokensToString(tokens))
	}
	if tokens[1].Line != 2 {
		t.Errorf("b on line %d, want 2", tokens[1].Line)
	}
}

func TestInvalidCharacter(t *testing.T) {
	expectError(t, "`", diag.LexInvalidCharacter)
	expectError(t, "int `x;", diag.LexInvalidCharacter)
	expectError(t, "\x80", diag.LexInvalidCharacter)
}

func TestControlCharsAreTrivia(t *testing.T) {
	tokens, err := tokenizeString(t, "a\x01b")
	if err != nil {
		t.Fatal(err)
	}
	expectedKinds := []token.Kind{token.Ident, token.Ident, token.EOF}
	if len(tokens) != len(expectedKinds) {
		t.Fatalf("got %s", tokensToString(tokens))
	}
	if tokens[1].Leading.Text != "\x01" {
		t.Errorf("leading = %q", tokens[1].Leading.Text)
	}
}

// ====== Строки и позиции ======

func TestLineNumbers(t *testing.T) {
	input := "one\ntwo three\n\nfour"
	tokens, err := tokenizeString(t, input)
	if err != nil {
		t.Fatal(err)
	}
	wantLines := []uint32{1, 2, 2, 4, 4} // включая EOF
	for i, tok := range tokens {
		if tok.Line != wantLines[i] {
			t.Errorf("token %d (%q): line = %d, want %d", i, tok.Text, tok.Line, wantLines[i])
		}
	}
}

func TestCarriageReturnDoesNotCountLines(t *testing.T) {
	tokens, err := tokenizeString(t, "a\r\nb\rc")
	if err != nil {
		t.Fatal(err)
	}
	if tokens[1].Line != 2 {
		t.Errorf("b: line = %d, want 2", tokens[1].Line)
	}
	// одиночный \r строку не увеличивает
	if tokens[2].Line != 2 {
		t.Errorf("c: line = %d, want 2", tokens[2].Line)
	}
}

// ====== Инварианты потока ======

func TestReconstruction(t *testing.T) {
	inputs := []string{
		"int x = 1;\n",
		"// a comment\nint y; /* block */ z++;\n",
		"#include <map>\n#define SQR(x) ((x)*(x))\nstd::map<int, int> m;\n",
		"auto f = [](int a) -> int { return a * 0x1p+3f; };\n",
		"\t  \n\n  spaced   out  \n",
		"a \\\n b // cont \\\nued\n",
		"#ifdef X\n#else\n#endif\n",
		"'c' \"str\" 1.5e-3L ->* ...\n",
		"",
	}
	for _, input := range inputs {
		t.Run(fmt.Sprintf("%.20q", input), func(t *testing.T) {
			tokens, err := tokenizeString(t, input)
			if err != nil {
				t.Fatal(err)
			}
			var b strings.Builder
			for _, tok := range tokens {
				b.WriteString(tok.Leading.Text)
				b.WriteString(tok.Text)
			}
			if b.String() != input {
				t.Errorf("reconstruction mismatch:\n got %q\nwant %q", b.String(), input)
			}
		})
	}
}

func TestSimpleStatement(t *testing.T) {
	tokens, err := tokenizeString(t, "int x = 1;\n")
	if err != nil {
		t.Fatal(err)
	}
	expected := []struct {
		kind token.Kind
		text string
	}{
		{token.KwInt, "int"},
		{token.Ident, "x"},
		{token.Assign, "="},
		{token.Number, "1"},
		{token.Semicolon, ";"},
		{token.EOF, ""},
	}
	if len(tokens) != len(expected) {
		t.Fatalf("got %s", tokensToString(tokens))
	}
	for i, want := range expected {
		if tokens[i].Kind != want.kind || tokens[i].Text != want.text {
			t.Errorf("token %d: got %v(%q), want %v(%q)",
				i, tokens[i].Kind, tokens[i].Text, want.kind, want.text)
		}
	}
}

func TestEmptyInput(t *testing.T) {
	tokens, err := tokenizeString(t, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 1 || tokens[0].Kind != token.EOF {
		t.Fatalf("got %s", tokensToString(tokens))
	}
}

func TestNextAfterEOF(t *testing.T) {
	lx, _ := makeTestLexer("x")
	for i := 0; i < 3; i++ {
		if _, err := lx.Next(); err != nil {
			t.Fatal(err)
		}
	}
	tok, err := lx.Next()
	if err != nil {
		t.Fatal(err)
	}
	if tok.Kind != token.EOF {
		t.Errorf("got %v after EOF", tok.Kind)
	}
}

func TestSpansAreContiguous(t *testing.T) {
	input := "void f(int a, char* b) { return; } // done\n"
	tokens, err := tokenizeString(t, input)
	if err != nil {
		t.Fatal(err)
	}
	var prevEnd uint32
	for i, tok := range tokens {
		if tok.Leading.Span.Start != prevEnd {
			t.Errorf("token %d: trivia starts at %d, want %d", i, tok.Leading.Span.Start, prevEnd)
		}
		if tok.Leading.Span.End != tok.Span.Start {
			t.Errorf("token %d: trivia ends at %d, token starts at %d", i, tok.Leading.Span.End, tok.Span.Start)
		}
		prevEnd = tok.Span.End
	}
	if prevEnd != uint32(len(input)) {
		t.Errorf("last token ends at %d, want %d", prevEnd, len(input))
	}
}

func TestRealisticSnippet(t *testing.T) {
	input := `#include <vector>

namespace demo {

template <class T>
class Holder {
 public:
  explicit Holder(T value) : value_(std::move(value)) {}
  const T& get() const noexcept { return value_; }

 private:
  T value_;
};

}  // namespace demo
`
	tokens, err := tokenizeString(t, input)
	if err != nil {
		t.Fatal(err)
	}
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(tok.Leading.Text)
		b.WriteString(tok.Text)
	}
	if b.String() != input {
		t.Fatal("reconstruction mismatch on realistic snippet")
	}

	// выборочные проверки классификации
	if tokens[0].Kind != token.PpInclude {
		t.Errorf("first token: %v", tokens[0].Kind)
	}
	sawTemplate, sawNoexcept := false, false
	for _, tok := range tokens {
		switch tok.Kind {
		case token.KwTemplate:
			sawTemplate = true
		case token.KwNoexcept:
			sawNoexcept = true
		}
	}
	if !sawTemplate || !sawNoexcept {
		t.Errorf("keyword classification missed: template=%v noexcept=%v", sawTemplate, sawNoexcept)
	}
}
