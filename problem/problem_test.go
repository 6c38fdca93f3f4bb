package problem_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"

	"github.com/olidennis/round-eliminator-sub001/problem"
)

type ProblemSuite struct {
	suite.Suite
}

func TestProblemSuite(t *testing.T) {
	suite.Run(t, new(ProblemSuite))
}

func (s *ProblemSuite) TestFromStringRoundTrips() {
	p, err := problem.FromString("A B\n\nA B")
	s.Require().NoError(err)
	s.Equal("A B\n\nA B", p.String())
}

func (s *ProblemSuite) TestFromStringRoundTripsStructurally() {
	p, err := problem.FromString("M U U U\nP P P P\n\nM UP UP UP\nU U U U")
	s.Require().NoError(err)

	reparsed, err := problem.FromString(p.String())
	s.Require().NoError(err)

	if diff := cmp.Diff(p.Active, reparsed.Active); diff != "" {
		s.Failf("active constraint changed across a parse/String/parse round trip", "(-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(p.Passive, reparsed.Passive); diff != "" {
		s.Failf("passive constraint changed across a parse/String/parse round trip", "(-want +got):\n%s", diff)
	}
}

func (s *ProblemSuite) TestFromStringRejectsMissingBlankLine() {
	_, err := problem.FromString("A B")
	s.Error(err)
}

func (s *ProblemSuite) TestCacheSetThenGet() {
	p, err := problem.FromString("A\n\nA")
	s.Require().NoError(err)
	c := p.Caches()
	_, ok := c.TrivialSets.Get()
	s.False(ok)
	c.TrivialSets.Set(nil)
	_, ok = c.TrivialSets.Get()
	s.True(ok)
}

func (s *ProblemSuite) TestCacheSetTwicePanics() {
	p, err := problem.FromString("A\n\nA")
	s.Require().NoError(err)
	c := p.Caches()
	c.TrivialSets.Set(nil)
	s.Panics(func() { c.TrivialSets.Set(nil) })
}

func (s *ProblemSuite) TestResetCachesClearsComputedState() {
	p, err := problem.FromString("A\n\nA")
	s.Require().NoError(err)
	c := p.Caches()
	c.TrivialSets.Set(nil)
	p.ResetCaches()
	_, ok := c.TrivialSets.Get()
	s.False(ok)
}

func (s *ProblemSuite) TestWithConstraintsGivesFreshCaches() {
	p, err := problem.FromString("A\n\nA")
	s.Require().NoError(err)
	p.Caches().TrivialSets.Set(nil)
	p2 := p.WithConstraints(p.Active, p.Passive)
	_, ok := p2.Caches().TrivialSets.Get()
	s.False(ok, "a freshly reconstructed Problem must not inherit the source's caches")
}
