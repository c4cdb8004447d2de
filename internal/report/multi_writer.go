package report

// MultiWriter fans a report out to multiple writers, stopping on the first
// failure.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a new MultiWriter.
func NewMultiWriter(ws ...Writer) *MultiWriter {
	return &MultiWriter{writers: ws}
}

// WriteReport sends the report to all writers.
func (mw *MultiWriter) WriteReport(r *Report) error {
	for _, w := range mw.writers {
		if err := w.WriteReport(r); err != nil {
			return err
		}
	}
	return nil
}
