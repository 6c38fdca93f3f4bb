package algorithms_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/olidennis/round-eliminator-sub001/algorithms"
	"github.com/olidennis/round-eliminator-sub001/problem"
)

type CriticalSetsSuite struct {
	suite.Suite
}

func TestCriticalSetsSuite(t *testing.T) {
	suite.Run(t, new(CriticalSetsSuite))
}

func (s *CriticalSetsSuite) TestCriticalRelaxProducesAWiderOrEqualPassive() {
	p, err := problem.FromString("M U U U\nP P P P\n\nM UP UP UP\nU U U U")
	s.Require().NoError(err)

	out, err := algorithms.CriticalRelax(p, 1, nil, nil, algorithms.DefaultOptions())
	s.Require().NoError(err)
	s.NotEmpty(out.Passive.Lines)
}

func (s *CriticalSetsSuite) TestCriticalHardenProducesASpedUpProblem() {
	p, err := problem.FromString("M U U U\nP P P P\n\nM UP UP UP\nU U U U")
	s.Require().NoError(err)

	out, err := algorithms.CriticalHarden(p, 1, nil, nil, false, algorithms.DefaultOptions())
	s.Require().NoError(err)
	s.NotEmpty(out.Active.Lines)
	s.NotEmpty(out.Passive.Lines)
}
