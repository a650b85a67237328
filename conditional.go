package sqltpl

import (
	"strings"
)

// resolveConditionals is the first pass: it decides the fate of every {...}
// block and strips the braces. A block is dropped when any placeholder inside
// it binds the skip sentinel, kept otherwise. The rewritten template is built
// into a fresh buffer, so positions never have to be readjusted mid-scan.
//
// The returned argument list has the arguments consumed by dropped spans
// removed. The substitution pass then reconsumes from index zero and the first
// placeholder after a dropped block still binds the right argument.
func resolveConditionals(tpl string, args []Value) (string, []Value, error) {
	if !strings.ContainsAny(tpl, "{}") {
		return tpl, args, nil
	}

	var (
		out       strings.Builder
		block     strings.Builder
		inBlock   bool
		openPos   int
		blockArgs []int
		kept      []Value
		argIdx    int
		pos       int
	)

	for _, r := range tpl {
		switch r {
		case '{':
			if inBlock {
				return "", nil, MalformedTemplateError{Pos: pos}
			}
			inBlock = true
			openPos = pos
			blockArgs = blockArgs[:0]
			block.Reset()

		case '}':
			if !inBlock {
				return "", nil, UnmatchedCloseBraceError{Pos: pos}
			}
			if len(blockArgs) == 0 {
				return "", nil, EmptyConditionalBlockError{Pos: openPos}
			}
			dropped := false
			for _, i := range blockArgs {
				if args[i].kind == KindSkip {
					dropped = true
					break
				}
			}
			if !dropped {
				out.WriteString(block.String())
				for _, i := range blockArgs {
					kept = append(kept, args[i])
				}
			}
			inBlock = false

		case '?':
			// Every placeholder advances the argument counter, even ones that
			// end up deleted with a dropped span.
			if inBlock {
				if argIdx >= len(args) {
					return "", nil, MissingConditionalArgumentError{ArgIndex: argIdx, Pos: pos}
				}
				blockArgs = append(blockArgs, argIdx)
				block.WriteRune(r)
			} else {
				if argIdx < len(args) {
					kept = append(kept, args[argIdx])
				}
				out.WriteRune(r)
			}
			argIdx++

		default:
			if inBlock {
				block.WriteRune(r)
			} else {
				out.WriteRune(r)
			}
		}
		pos++
	}

	if inBlock {
		return "", nil, UnclosedConditionalBlockError{Pos: openPos}
	}
	return out.String(), kept, nil
}
