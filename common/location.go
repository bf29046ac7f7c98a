package common

import (
	"fmt"

	mibig "github.com/kblin/go-mibig"
)

// Location is a closed integer interval on a sequence.
type Location struct {
	Begin int
	End   int
}

// DecodeLocation decodes {"from": int, "to": int}.
func DecodeLocation(raw any) (Location, error) {
	o, err := mibig.AsObject(raw, "Location")
	if err != nil {
		return Location{}, err
	}
	l := Location{Begin: o.Int("from"), End: o.Int("to")}
	if err := o.Err(); err != nil {
		return Location{}, err
	}
	return l, nil
}

// LocationFromJSON decodes and validates a location.
func LocationFromJSON(raw any, vc *mibig.Context) (Location, error) {
	l, err := DecodeLocation(raw)
	if err != nil {
		return Location{}, err
	}
	return mibig.Build(l, vc)
}

// ToJSON returns the wire form.
func (l Location) ToJSON() any {
	return mibig.Fields{}.Set("from", l.Begin).Set("to", l.End).Map()
}

// Validate checks ordering and bounds. The questionable quality level skips
// the sign and sequence-length checks but not the ordering or CDS checks.
func (l Location) Validate(vc *mibig.Context) mibig.Issues {
	var iss mibig.Issues
	from := mibig.Root().Field("from")
	to := mibig.Root().Field("to")
	questionable := vc.Questionable()

	if l.Begin < 0 && !questionable {
		iss = append(iss, from.Issue("Location.from", mibig.CodeDomainRange, "From coordinate must be positive"))
	}
	if l.End < 0 && !questionable {
		iss = append(iss, to.Issue("Location.to", mibig.CodeDomainRange, "To coordinate must be positive"))
	}
	if l.Begin > l.End {
		iss = append(iss, mibig.Root().Issue("Location", mibig.CodeDomainRange,
			fmt.Sprintf("Location.from %d must be less than Location.to %d", l.Begin, l.End)))
	}

	if rec := vc.GetRecord(); rec != nil && !questionable {
		if l.Begin > rec.SeqLen() {
			iss = append(iss, from.Issue("Location.from", mibig.CodeDomainRange,
				"Location.from must be less than the sequence length", "seqLen", rec.SeqLen()))
		}
		if l.End > rec.SeqLen() {
			iss = append(iss, to.Issue("Location.to", mibig.CodeDomainRange,
				"Location.to must be less than the sequence length", "seqLen", rec.SeqLen()))
		}
	}

	if cds := vc.GetCDS(); cds != nil {
		if l.End > cds.TranslationLength() {
			iss = append(iss, to.Issue("Location.to", mibig.CodeDomainRange,
				"Location.to must be less than the translation length", "translationLength", cds.TranslationLength()))
		}
	}
	return iss
}

// Len returns the number of positions covered, End - Begin.
func (l Location) Len() int { return l.End - l.Begin }

func (l Location) String() string { return fmt.Sprintf("%d-%d", l.Begin, l.End) }
