package services

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/yoockh/facultyportal/internal/models"
	sqlrepo "github.com/yoockh/facultyportal/internal/repositories/sqlstore"
	"github.com/yoockh/facultyportal/internal/scoring"
	"github.com/yoockh/facultyportal/internal/utils"
)

// ScoringInputsLoader gathers everything the weight calculator reads for
// one user.
type ScoringInputsLoader interface {
	Load(ctx context.Context, userID string) (scoring.Inputs, error)
}

type repoInputsLoader struct {
	education    sqlrepo.EducationRepository
	experience   sqlrepo.ExperienceRepository
	publications sqlrepo.PublicationRepository
	phd          sqlrepo.PhDRepository
}

func NewScoringInputsLoader(
	education sqlrepo.EducationRepository,
	experience sqlrepo.ExperienceRepository,
	publications sqlrepo.PublicationRepository,
	phd sqlrepo.PhDRepository,
) ScoringInputsLoader {
	return &repoInputsLoader{education: education, experience: experience, publications: publications, phd: phd}
}

// Load runs the four reads concurrently. Education is mandatory; the other
// sections default to empty.
func (l *repoInputsLoader) Load(ctx context.Context, userID string) (scoring.Inputs, error) {
	const op = "ScoringInputs.Load"

	var (
		in   scoring.Inputs
		edu  *models.Education
		exp  []models.Experience
		pubs []models.Publication
		phd  *models.PhD
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		e, err := l.education.GetByUserID(gctx, userID)
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "User education data not found", err)
		}
		if err != nil {
			return utils.E(utils.CodeInternal, op, "Error fetching education data", err)
		}
		edu = e
		return nil
	})
	g.Go(func() error {
		rows, err := l.experience.ListByUser(gctx, userID)
		if err != nil {
			return utils.E(utils.CodeInternal, op, "Error fetching experience data", err)
		}
		exp = rows
		return nil
	})
	g.Go(func() error {
		rows, err := l.publications.ListByUser(gctx, userID)
		if err != nil {
			return utils.E(utils.CodeInternal, op, "Error fetching publications data", err)
		}
		pubs = rows
		return nil
	})
	g.Go(func() error {
		p, err := l.phd.GetByUserID(gctx, userID)
		if errors.Is(err, utils.ErrNotFound) {
			return nil
		}
		if err != nil {
			return utils.E(utils.CodeInternal, op, "Error fetching PhD data", err)
		}
		phd = p
		return nil
	})
	if err := g.Wait(); err != nil {
		return scoring.Inputs{}, err
	}

	in.Education = edu
	in.Experience = exp
	in.Publications = pubs
	in.PhD = phd
	return in, nil
}
