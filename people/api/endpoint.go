// Copyright (c) Roster Contributors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"

	"github.com/go-kit/kit/endpoint"
	"github.com/rosterio/roster/people"
	"github.com/rosterio/roster/pkg/apiutil"
	"github.com/rosterio/roster/pkg/errors"
	svcerr "github.com/rosterio/roster/pkg/errors/service"
)

func createOneEndpoint(svc people.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(createOneReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		saved, err := svc.CreateOne(ctx, req.person)
		if err != nil {
			return nil, err
		}

		return personRes{Person: saved, created: true}, nil
	}
}

func createManyEndpoint(svc people.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(createManyReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		saved, err := svc.CreateMany(ctx, req.people)
		if err != nil {
			return nil, err
		}

		return peopleRes{People: saved, created: true}, nil
	}
}

func findByNameEndpoint(svc people.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(findByNameReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		ps, err := svc.FindByName(ctx, req.name)
		if err != nil {
			return nil, err
		}

		return peopleRes{People: ps}, nil
	}
}

func findByFoodEndpoint(svc people.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(findByFoodReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		p, found, err := svc.FindOneByFavoriteFood(ctx, req.food)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, svcerr.ErrNotFound
		}

		return personRes{Person: p}, nil
	}
}

func findByIDEndpoint(svc people.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(idReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		p, found, err := svc.FindByID(ctx, req.id)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, svcerr.ErrNotFound
		}

		return personRes{Person: p}, nil
	}
}

func classicUpdateEndpoint(svc people.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(idReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		p, found, err := svc.ClassicUpdate(ctx, req.id)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, svcerr.ErrNotFound
		}

		return personRes{Person: p}, nil
	}
}

func setAgeEndpoint(svc people.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(setAgeReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		p, found, err := svc.FindAndSetAge(ctx, req.Name, req.Age)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, svcerr.ErrNotFound
		}

		return personRes{Person: p}, nil
	}
}

func removeByIDEndpoint(svc people.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(idReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		p, found, err := svc.RemoveByID(ctx, req.id)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, svcerr.ErrNotFound
		}

		return personRes{Person: p}, nil
	}
}

func removeManyEndpoint(svc people.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(removeManyReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		count, err := svc.RemoveManyByName(ctx, req.name)
		if err != nil {
			return nil, err
		}

		return removeManyRes{Deleted: count}, nil
	}
}

func loversEndpoint(svc people.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(loversReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		ps, err := svc.BurritoLovers(ctx)
		if err != nil {
			return nil, err
		}

		lovers := make([]loverRes, 0, len(ps))
		for _, p := range ps {
			lovers = append(lovers, loverRes{
				ID:            p.ID,
				Name:          p.Name,
				FavoriteFoods: p.FavoriteFoods,
			})
		}

		return loversRes{Lovers: lovers}, nil
	}
}
