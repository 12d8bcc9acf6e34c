package snfmt

import (
	"github.com/snfmt/snfmt/errors"
	"github.com/snfmt/snfmt/internal/scan"
)

// verbWant names the argument kind a verb expects, for error messages.
func verbWant(v scan.Verb) string {
	switch v {
	case scan.VerbInt:
		return "int"
	case scan.VerbUint, scan.VerbHex, scan.VerbHexUpper:
		return "uint"
	case scan.VerbPointer:
		return "pointer"
	case scan.VerbChar:
		return "char"
	case scan.VerbString:
		return "string"
	case scan.VerbFloat:
		return "float"
	}
	return ""
}

// kindAccepted reports whether an argument kind satisfies a verb. Integer
// verbs accept any of the integer-carrying kinds, matching how the render
// path coerces them through the shared payload.
func kindAccepted(v scan.Verb, k ArgKind) bool {
	switch v {
	case scan.VerbInt, scan.VerbUint, scan.VerbHex, scan.VerbHexUpper:
		return k == KindInt || k == KindUint || k == KindChar
	case scan.VerbPointer:
		return k == KindPointer || k == KindUint
	case scan.VerbChar:
		return k == KindChar || k == KindInt || k == KindUint
	case scan.VerbString:
		return k == KindString
	case scan.VerbFloat:
		return k == KindFloat
	}
	return false
}

// Check validates that the argument sequence matches what the template's
// directives will consume, in order: kinds, count, and recognizability of
// every conversion. Render never needs Check to succeed, since mismatches
// degrade deterministically there, but callers holding the classic
// "caller guarantees the pairing" contract can enforce it here and get a
// structured *errors.Error describing the first violation.
func Check(format string, args ...Arg) error {
	cur := cursor{args: args}
	sc := scan.New(format)
	for {
		tok, ok := sc.Next()
		if !ok {
			break
		}
		if !tok.IsDir {
			continue
		}
		d := tok.Dir

		if d.Verb == scan.VerbBad {
			return errors.BadDirective(errors.PhaseCheck, d.Offset, d.Raw)
		}
		if !d.Verb.Consumes() {
			continue
		}

		if d.WidthArg {
			if err := checkIntArg(&cur, &d, "int (width)"); err != nil {
				return err
			}
		}
		if d.PrecArg {
			if err := checkIntArg(&cur, &d, "int (precision)"); err != nil {
				return err
			}
		}

		want := verbWant(d.Verb)
		if cur.remaining() == 0 {
			return errors.MissingArg(errors.PhaseCheck, d.Offset, d.Raw, want)
		}
		a := cur.take()
		if !kindAccepted(d.Verb, a.Kind()) {
			return errors.TypeMismatch(errors.PhaseCheck, d.Offset, d.Raw, want, a.Kind().String())
		}
	}

	if n := cur.remaining(); n > 0 {
		return errors.ExtraArgs(errors.PhaseCheck, n)
	}
	return nil
}

func checkIntArg(cur *cursor, d *scan.Directive, want string) error {
	if cur.remaining() == 0 {
		return errors.MissingArg(errors.PhaseCheck, d.Offset, d.Raw, want)
	}
	a := cur.take()
	if k := a.Kind(); k != KindInt && k != KindUint {
		return errors.TypeMismatch(errors.PhaseCheck, d.Offset, d.Raw, want, k.String())
	}
	return nil
}
