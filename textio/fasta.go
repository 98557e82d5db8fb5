package textio

import (
	"io"

	"github.com/shenwei356/bio/seqio/fastx"
	"github.com/shenwei356/xopen"
)

// Record is one sequence read from a FASTA/FASTQ file.
type Record struct {
	ID  string
	Seq string
}

// OpenText opens file for reading, decompressing it if needed. "-" is
// stdin. The caller closes the reader.
func OpenText(file string) (*xopen.Reader, error) {
	return xopen.Ropen(file)
}

// ReadSequences reads every record of a FASTA or FASTQ file. The
// alphabet is detected from the data.
func ReadSequences(file string) ([]Record, error) {
	r, err := fastx.NewReader(nil, file, "")
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var out []Record
	for {
		rec, err := r.Read()
		if err != nil {
			if err == io.EOF {
				break
			}

			return nil, err
		}
		// the reader reuses its buffers between records
		out = append(out, Record{ID: string(rec.ID), Seq: string(rec.Seq.Seq)})
	}

	return out, nil
}
