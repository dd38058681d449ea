package polyply

import (
	"sort"

	"github.com/chrisjonesBSU/polyply-1.0/internal/molecule"
)

// tagExclusions makes the nrexcl of every block referenced by nodeToBlock
// the same. If they differ, the lowest nrexcl is used and the nodes of
// each block with a higher value are tagged with "exclude", set to that
// original value. Links generate the missing exclusions from the tag.
//
// Blocks in ff are changed in place.
func tagExclusions(nodeToBlock map[int]string, ff *molecule.ForceField) (*molecule.ExclusionReport, error) {
	report := &molecule.ExclusionReport{Original: make(map[string]int)}

	distinct := make(map[int]bool)
	for _, name := range nodeToBlock {
		if _, seen := report.Original[name]; seen {
			continue
		}
		b, err := ff.Block(name)
		if err != nil {
			return nil, err
		}
		report.Original[name] = b.Nrexcl
		distinct[b.Nrexcl] = true
	}

	first := true
	for nrexcl := range distinct {
		if first || nrexcl < report.Min {
			report.Min = nrexcl
			first = false
		}
	}
	if len(distinct) < 2 {
		return report, nil
	}

	for name, nrexcl := range report.Original {
		if nrexcl == report.Min {
			continue
		}
		b := ff.Blocks[name]
		b.SetNodeAttr(excludeAttr, nrexcl)
		b.Nrexcl = report.Min
		report.Tagged = append(report.Tagged, name)
	}
	sort.Strings(report.Tagged)

	return report, nil
}
