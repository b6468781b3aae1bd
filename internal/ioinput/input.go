// Package ioinput reads lab analysis requests from YAML files.
//
// A file looks like:
//
//	officer_id: officer-7
//	puskesmas_id: pkm-coblong
//	analyses:
//	  - report_id: 2f0c7a4e
//	    notes: sampled at the public tap
//	    parameters:
//	      bacteria_count: 150
//	      ph_level: 7.2
//	      e_coli_present: false
//
// Parameters that are left out were not measured.
package ioinput

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/gnames/gnlib"
	"github.com/sigapair/airlab/pkg/safety"
	"gopkg.in/yaml.v3"
)

// File is the content of an input file.
type File struct {
	// OfficerID is used for analyses without their own officer.
	OfficerID string `yaml:"officer_id"`

	// PuskesmasID is used for analyses without their own clinic.
	PuskesmasID string `yaml:"puskesmas_id"`

	Analyses []Analysis `yaml:"analyses"`
}

// Analysis is one requested analysis.
type Analysis struct {
	ReportID    string               `yaml:"report_id"`
	OfficerID   string               `yaml:"officer_id"`
	PuskesmasID string               `yaml:"puskesmas_id"`
	Notes       string               `yaml:"notes"`
	Parameters  safety.RawParameters `yaml:"parameters"`
}

// Load reads and checks an input file. Defaults of the file are copied
// to analyses that do not set them.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, FileError(path, err)
	}
	res, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, FormatError(path, err)
	}
	return res, nil
}

// Parse decodes an input document. Unknown keys are rejected so typos in
// parameter names do not silently become "not measured".
func Parse(r io.Reader) (*File, error) {
	var res File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&res); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty document")
		}
		return nil, err
	}

	seen := make(map[string]bool)
	for i := range res.Analyses {
		a := &res.Analyses[i]
		a.ReportID = strings.TrimSpace(a.ReportID)
		if a.ReportID == "" {
			return nil, missingIDError(i)
		}
		if seen[a.ReportID] {
			return nil, duplicateIDError(a.ReportID)
		}
		seen[a.ReportID] = true

		if a.OfficerID == "" {
			a.OfficerID = res.OfficerID
		}
		if a.PuskesmasID == "" {
			a.PuskesmasID = res.PuskesmasID
		}
		a.Notes = strings.TrimSpace(gnlib.FixUtf8(a.Notes))
	}
	return &res, nil
}
