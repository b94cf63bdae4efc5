// Package qualifier decodes NCE examination qualifier listings.
//
// Input is tab separated text, one examinee per line:
//
//	surname TAB first_name TAB [middle_name TAB] application_id TAB seat_number TAB time
//	TAB room_assignment TAB test_center_code TAB test_center_name TAB test_center_addr
//
// The middle name column is optional and is only recognized by checking whether the
// field after the first name already looks like a seven digit application id.
//
// Decoding is lazy and pull based. Qualifiers pulls one line at a time from a LineSource
// (an in-memory string or an io.Reader) and yields either a Record or a *ParseError
// carrying the 1-based line number. A bad line never stops iteration; whether to abort
// or skip is left to the caller.
//
// The package never logs.
package qualifier
