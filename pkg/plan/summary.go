package plan

// Summary is the serializable report of a plan: tallies plus full
// listings per disposition. It marshals directly to YAML or JSON
// without further transformation.
type Summary struct {
	NPaths    int `yaml:"n_paths" json:"n_paths"`
	NActive   int `yaml:"n_active" json:"n_active"`
	NFiltered int `yaml:"n_filtered" json:"n_filtered"`
	NSkipped  int `yaml:"n_skipped" json:"n_skipped"`
	NExcluded int `yaml:"n_excluded" json:"n_excluded"`

	NCreateParent int `yaml:"n_create_parent" json:"n_create_parent"`
	NClobber      int `yaml:"n_clobber" json:"n_clobber"`

	NRenamed      int `yaml:"n_renamed" json:"n_renamed"`
	NFailed       int `yaml:"n_failed" json:"n_failed"`
	NNotAttempted int `yaml:"n_not_attempted" json:"n_not_attempted"`

	OK       bool     `yaml:"ok" json:"ok"`
	CaseMode string   `yaml:"case_mode" json:"case_mode"`
	Failures []string `yaml:"failures,omitempty" json:"failures,omitempty"`

	Active   []Record `yaml:"active,omitempty" json:"active,omitempty"`
	Skipped  []Record `yaml:"skipped,omitempty" json:"skipped,omitempty"`
	Excluded []Record `yaml:"excluded,omitempty" json:"excluded,omitempty"`
	Filtered []Record `yaml:"filtered,omitempty" json:"filtered,omitempty"`
}

// Summary renders the current state of the plan. Called before
// execution it reports outcomes as not-attempted; called after, it
// reflects per-pair results.
func (p *Plan) Summary() Summary {
	s := Summary{
		NPaths:    len(p.pairs),
		NActive:   len(p.active),
		NFiltered: len(p.filtered),
		NSkipped:  len(p.skipped),
		NExcluded: len(p.excluded),
		OK:        p.ok,
		CaseMode:  p.checker.Mode().String(),
		Failures:  p.failures,
	}
	for _, rn := range p.active {
		if rn.CreateParent {
			s.NCreateParent++
		}
		if rn.Clobber {
			s.NClobber++
		}
	}
	for _, rn := range p.pairs {
		switch rn.Outcome {
		case OutcomeRenamed:
			s.NRenamed++
		case OutcomeFailed:
			s.NFailed++
		default:
			s.NNotAttempted++
		}
	}
	s.Active = records(p.active)
	s.Skipped = records(p.skipped)
	s.Excluded = records(p.excluded)
	s.Filtered = records(p.filtered)
	return s
}

// Records renders the full inventory in input order.
func (p *Plan) Records() []Record {
	return records(p.pairs)
}

func records(rns []*Renaming) []Record {
	if len(rns) == 0 {
		return nil
	}
	out := make([]Record, len(rns))
	for i, rn := range rns {
		out[i] = rn.Record(false)
	}
	return out
}
