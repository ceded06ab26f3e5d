// Package marginx renders tree-structured values (objects, arrays,
// primitives, null) as indented text, keeping sibling elements on one line
// for as long as they fit within a configurable print margin.
//
// Output wraps after separators, never inside a token: the current line is
// flushed once its visible width exceeds PrintMargin minus RightMargin, and
// the next token starts a fresh line indented for its nesting level. Optional
// ANSI coloring never affects where lines wrap.
//
// Basic usage:
//
//	root := marginx.Object(
//		marginx.Field("name", marginx.String("box")),
//		marginx.Field("dims", marginx.Array(marginx.Int(4), marginx.Int(9))),
//	)
//	if err := marginx.Format(root, os.Stdout, true); err != nil {
//		log.Fatal(err)
//	}
//
// Custom margins and color:
//
//	f, err := marginx.New(&marginx.Options{
//		PrintMargin:  40,
//		IndentSize:   2,
//		RightMargin:  4,
//		EscapeMarkup: true,
//		Palette:      "tokyo-night",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := f.Format(root, os.Stdout, true); err != nil {
//		log.Fatal(err)
//	}
//
// Trees are built through the Object/Array/scalar constructors or converted
// from decoded generic values with FromValue. The package formats existing
// trees only; it contains no parser.
package marginx
