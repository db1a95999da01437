package dsl

// grammarSrc describes the DSL in itself. Code blocks are plain identifiers so that the
// description renders under every dialect. Registering ws and comment as skip tokens is
// left to the host.
const grammarSrc = `grammar Combgen {
    regex ws: [ \n\r\t]+ ;
    regex comment: ('/*' .* '*/')! | '//' [^\n]* ;

    fragment hex: [0-9A-Fa-f] ;
    fragment digit: [0-9] ;

    num: regex(digit{1,6}, ` + "`toInt`" + `) ;
    id: regex([A-Za-z_] [A-Za-z_0-9]*) ;
    rawString: regex("'" ("\\\\" | "\\'" | [^'])* "'", ` + "`unquoteRaw`" + `) ;
    escString: regex("\"" ("\\" . | [^\\"])* "\"", ` + "`unquoteEscaped`" + `) ;
    string: rawString | escString ;
    mlCode: regex(("{{{" .* "}}}")!, ` + "`multiLineCode`" + `) ;
    slCode: regex("` + "`" + `" [^` + "`" + `]* "` + "`" + `", ` + "`singleLineCode`" + `) ;
    inlined: mlCode | slCode ;

    escape: regex("\\U" hex{8}, ` + "`escHex`" + `)
        | regex("\\u" hex{4}, ` + "`escHex`" + `)
        | regex("\\x" hex{2}, ` + "`escHex`" + `)
        | regex("\\" ., ` + "`escChar`" + `) ;
    chr: regex([^\\\]], ` + "`firstRune`" + `) | escape ;
    setItem: chr ("-" chr >> ` + "`rangeChar`" + ` | ` + "`singleChar`" + `) ;
    setItems: (setItem >> ` + "`union`" + `)* ;
    charSet: "[" setItems "]" | "[^" setItems "]" ` + "`invert`" + ` ;
    anyChar: "." ` + "`anyChar`" + ` ;

    regexCall: "regex" "(" expr ("," elementary >> ` + "`regexCall`" + ` | ` + "`textToken`" + `) ")" ;
    elementary<` + "`Node`" + `>: "(" expr ")" | regexCall | id ` + "`identifier`" + ` | string | inlined | anyChar | charSet ;
    bounds: num ("," (num >> ` + "`fromTo`" + ` | ` + "`atLeast`" + `) | ` + "`exactly`" + `) ;
    basic: elementary ("*" ` + "`star`" + ` | "+" ` + "`plus`" + ` | "?" ` + "`optional`" + ` | "!" ` + "`nonGreedy`" + ` | "{" bounds "}" >> ` + "`countRange`" + `)? ;
    extended: basic (">>" elementary >> ` + "`fold`" + ` | "@" elementary >> ` + "`annotate`" + `)* ;
    concat: extended (extended >> ` + "`concat`" + `)* ;
    union: concat ("|" concat >> ` + "`union`" + `)* ;
    expr<` + "`Node`" + `>: union ;

    fragmentRule: "fragment" id ":" expr >> ` + "`fragmentRule`" + ` ;
    regexRule: "regex" id ":" expr >> ` + "`regexRule`" + ` ;
    header: id ("<" elementary ">" >> ` + "`typedHeader`" + ` | ` + "`untypedHeader`" + `) ;
    parserRule: header ":" expr >> ` + "`parserRule`" + ` ;
    rule: fragmentRule | regexRule | parserRule ;
    statement: rule ";" | inlined ;
    grammar: "grammar" id "{" (statement >> ` + "`append`" + `)* "}" ;
    program: inlined? grammar >> ` + "`program`" + ` ;
}
`

// GrammarSource returns the DSL's description of itself.
func GrammarSource() string {
	return grammarSrc
}
