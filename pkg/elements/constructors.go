package elements

import "github.com/justinyaodu/htmlcomp/pkg/htmlcomp"

// mk constructs a catalog element; the name is guaranteed registered
// once Register has run.
func mk(name string, args []any) *Element {
	return htmlcomp.MustNew(name, args...)
}

// Text wraps a formatted string for use as a child. Plain strings are
// accepted directly by the constructors; this exists for symmetry at
// call sites that build children programmatically.
func Text(s string) any { return s }

// Fragment groups children without a wrapper tag.
func Fragment(args ...any) *Element { return htmlcomp.Fragment(args...) }

// Document structure elements

func Html(args ...any) *Element  { return mk("html", args) }
func Head(args ...any) *Element  { return mk("head", args) }
func Body(args ...any) *Element  { return mk("body", args) }
func Title(args ...any) *Element { return mk("title", args) }
func Meta(args ...any) *Element  { return mk("meta", args) }
func Link(args ...any) *Element  { return mk("link", args) }
func Base(args ...any) *Element  { return mk("base", args) }

// Content sectioning elements

func Header(args ...any) *Element  { return mk("header", args) }
func Footer(args ...any) *Element  { return mk("footer", args) }
func Main(args ...any) *Element    { return mk("main", args) }
func Nav(args ...any) *Element     { return mk("nav", args) }
func Section(args ...any) *Element { return mk("section", args) }
func Article(args ...any) *Element { return mk("article", args) }
func Aside(args ...any) *Element   { return mk("aside", args) }
func Address(args ...any) *Element { return mk("address", args) }
func H1(args ...any) *Element      { return mk("h1", args) }
func H2(args ...any) *Element      { return mk("h2", args) }
func H3(args ...any) *Element      { return mk("h3", args) }
func H4(args ...any) *Element      { return mk("h4", args) }
func H5(args ...any) *Element      { return mk("h5", args) }
func H6(args ...any) *Element      { return mk("h6", args) }
func Hgroup(args ...any) *Element  { return mk("hgroup", args) }

// Text content elements

func Div(args ...any) *Element        { return mk("div", args) }
func P(args ...any) *Element          { return mk("p", args) }
func Span(args ...any) *Element       { return mk("span", args) }
func Pre(args ...any) *Element        { return mk("pre", args) }
func Blockquote(args ...any) *Element { return mk("blockquote", args) }
func Ul(args ...any) *Element         { return mk("ul", args) }
func Ol(args ...any) *Element         { return mk("ol", args) }
func Li(args ...any) *Element         { return mk("li", args) }
func Dl(args ...any) *Element         { return mk("dl", args) }
func Dt(args ...any) *Element         { return mk("dt", args) }
func Dd(args ...any) *Element         { return mk("dd", args) }
func Hr(args ...any) *Element         { return mk("hr", args) }
func Figure(args ...any) *Element     { return mk("figure", args) }
func Figcaption(args ...any) *Element { return mk("figcaption", args) }

// Inline text semantics

func A(args ...any) *Element      { return mk("a", args) }
func Strong(args ...any) *Element { return mk("strong", args) }
func Em(args ...any) *Element     { return mk("em", args) }
func B(args ...any) *Element      { return mk("b", args) }
func I(args ...any) *Element      { return mk("i", args) }
func U(args ...any) *Element      { return mk("u", args) }
func S(args ...any) *Element      { return mk("s", args) }
func Small(args ...any) *Element  { return mk("small", args) }
func Mark(args ...any) *Element   { return mk("mark", args) }
func Sub(args ...any) *Element    { return mk("sub", args) }
func Sup(args ...any) *Element    { return mk("sup", args) }
func Code(args ...any) *Element   { return mk("code", args) }
func Kbd(args ...any) *Element    { return mk("kbd", args) }
func Samp(args ...any) *Element   { return mk("samp", args) }
func Var(args ...any) *Element    { return mk("var", args) }
func Abbr(args ...any) *Element   { return mk("abbr", args) }
func Time_(args ...any) *Element  { return mk("time", args) }
func Cite(args ...any) *Element   { return mk("cite", args) }
func Q(args ...any) *Element      { return mk("q", args) }
func Dfn(args ...any) *Element    { return mk("dfn", args) }
func Ruby(args ...any) *Element   { return mk("ruby", args) }
func Rt(args ...any) *Element     { return mk("rt", args) }
func Rp(args ...any) *Element     { return mk("rp", args) }
func Bdi(args ...any) *Element    { return mk("bdi", args) }
func Bdo(args ...any) *Element    { return mk("bdo", args) }
func Ins(args ...any) *Element    { return mk("ins", args) }
func Del(args ...any) *Element    { return mk("del", args) }

// DataElement creates a <data> HTML element.
// For data-* attributes, use Data(key, value) instead.
func DataElement(args ...any) *Element { return mk("data", args) }
func Br(args ...any) *Element          { return mk("br", args) }
func Wbr(args ...any) *Element         { return mk("wbr", args) }

// Form elements

func Form(args ...any) *Element     { return mk("form", args) }
func Input(args ...any) *Element    { return mk("input", args) }
func Textarea(args ...any) *Element { return mk("textarea", args) }
func Select(args ...any) *Element   { return mk("select", args) }
func Option(args ...any) *Element   { return mk("option", args) }
func Optgroup(args ...any) *Element { return mk("optgroup", args) }
func Button(args ...any) *Element   { return mk("button", args) }
func Label(args ...any) *Element    { return mk("label", args) }
func Fieldset(args ...any) *Element { return mk("fieldset", args) }
func Legend(args ...any) *Element   { return mk("legend", args) }
func Datalist(args ...any) *Element { return mk("datalist", args) }
func Output(args ...any) *Element   { return mk("output", args) }
func Progress(args ...any) *Element { return mk("progress", args) }
func Meter(args ...any) *Element    { return mk("meter", args) }

// Table elements

func Table(args ...any) *Element    { return mk("table", args) }
func Thead(args ...any) *Element    { return mk("thead", args) }
func Tbody(args ...any) *Element    { return mk("tbody", args) }
func Tfoot(args ...any) *Element    { return mk("tfoot", args) }
func Tr(args ...any) *Element       { return mk("tr", args) }
func Th(args ...any) *Element       { return mk("th", args) }
func Td(args ...any) *Element       { return mk("td", args) }
func Caption(args ...any) *Element  { return mk("caption", args) }
func Colgroup(args ...any) *Element { return mk("colgroup", args) }
func Col(args ...any) *Element      { return mk("col", args) }

// Media elements

func Img(args ...any) *Element     { return mk("img", args) }
func Picture(args ...any) *Element { return mk("picture", args) }
func Source(args ...any) *Element  { return mk("source", args) }
func Video(args ...any) *Element   { return mk("video", args) }
func Audio(args ...any) *Element   { return mk("audio", args) }
func Track(args ...any) *Element   { return mk("track", args) }
func Iframe(args ...any) *Element  { return mk("iframe", args) }
func Embed(args ...any) *Element   { return mk("embed", args) }
func Object(args ...any) *Element  { return mk("object", args) }
func Param(args ...any) *Element   { return mk("param", args) }
func Canvas(args ...any) *Element  { return mk("canvas", args) }
func Svg(args ...any) *Element     { return mk("svg", args) }
func Math(args ...any) *Element    { return mk("math", args) }
func Map_(args ...any) *Element    { return mk("map", args) }
func Area(args ...any) *Element    { return mk("area", args) }

// Interactive elements

func Details(args ...any) *Element { return mk("details", args) }
func Summary(args ...any) *Element { return mk("summary", args) }
func Dialog(args ...any) *Element  { return mk("dialog", args) }
func Menu(args ...any) *Element    { return mk("menu", args) }

// Scripting elements

func Script(args ...any) *Element   { return mk("script", args) }
func Noscript(args ...any) *Element { return mk("noscript", args) }
func Template(args ...any) *Element { return mk("template", args) }
func Slot(args ...any) *Element     { return mk("slot", args) }
func Style(args ...any) *Element    { return mk("style", args) }
