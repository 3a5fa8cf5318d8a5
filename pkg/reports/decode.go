package reports

import (
	"stalepr/pkg/domain"
	"stalepr/pkg/serrors"
	"unicode/utf8"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// requiredFields lists the keys every record must carry, indexed by their bit
// in the seen mask built while decoding.
var requiredFields = [...]string{"title", "url", "daysStale"} //nolint: gochecknoglobals

// DecodeRecords parses a report: a bare JSON array of stale PR objects.
// Unknown keys are skipped. A record missing a required key fails with
// serrors.ErrMissingField; any other syntax or type problem fails with
// serrors.ErrMalformedInput, as does a document that is not valid UTF-8 or
// carries anything but whitespace after the array.
func DecodeRecords(data []byte) ([]domain.StaleRecord, error) {
	if !utf8.Valid(data) {
		return nil, serrors.With(serrors.ErrMalformedInput, "report is not valid UTF-8")
	}
	if !jx.Valid(data) {
		return nil, serrors.With(serrors.ErrMalformedInput, "report is not a single valid JSON document")
	}

	d := jx.DecodeBytes(data)
	if tt := d.Next(); tt != jx.Array {
		return nil, serrors.With(serrors.ErrMalformedInput, "expected a JSON array, got %s", tt)
	}

	records := make([]domain.StaleRecord, 0)
	if err := d.Arr(func(d *jx.Decoder) error {
		var r domain.StaleRecord
		if err := decodeRecord(d, &r); err != nil {
			return errors.Wrapf(err, "record %d", len(records))
		}
		records = append(records, r)

		return nil
	}); err != nil {
		k := serrors.KindOf(err)
		if k == nil {
			k = serrors.ErrMalformedInput
		}

		return nil, serrors.Wrap(k, err, "decode records")
	}

	return records, nil
}

func decodeRecord(d *jx.Decoder, r *domain.StaleRecord) error {
	var seen uint8
	if err := d.ObjBytes(func(d *jx.Decoder, k []byte) error {
		switch string(k) {
		case "title":
			seen |= 1 << 0
			v, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "decode field \"title\"")
			}
			r.Title = v
		case "url":
			seen |= 1 << 1
			v, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "decode field \"url\"")
			}
			r.URL = v
		case "daysStale":
			seen |= 1 << 2
			v, err := d.Int()
			if err != nil {
				return errors.Wrap(err, "decode field \"daysStale\"")
			}
			r.DaysStale = v
		default:
			return d.Skip()
		}

		return nil
	}); err != nil {
		return errors.Wrap(err, "decode StaleRecord")
	}

	for i, name := range requiredFields {
		if seen&(1<<i) == 0 {
			return serrors.With(serrors.ErrMissingField, "missing required field %q", name)
		}
	}

	return nil
}
