// Package sanitizer normalizes client-supplied strings before
// validation and persistence. Sanitization never rejects input, it
// only canonicalizes it; rejection is the validators' job.
package sanitizer

type Strategy func(string) string

type Pipeline []Strategy

func (p Pipeline) Apply(s string) string {
	for _, fn := range p {
		s = fn(s)
	}
	return s
}
