// This file contains the logic for translating decoded HCL blocks into the
// format-agnostic model.

package hclmodel

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/netgraph/internal/ctxlog"
	"github.com/vk/netgraph/internal/model"
	"github.com/zclconf/go-cty/cty"
)

// isExprDefined checks if an HCL expression was actually present in the source
// code. The decoder fills omitted optional attributes with a zero-width
// placeholder expression, so a nil check alone is not enough.
func isExprDefined(ctx context.Context, expr hcl.Expression, attrName string) bool {
	if expr == nil {
		return false
	}
	exprRange := expr.Range()
	isDefined := exprRange.End.Byte > exprRange.Start.Byte

	ctxlog.FromContext(ctx).Debug("Checking if HCL attribute was explicitly defined.",
		"attribute", attrName,
		"hcl_range", exprRange.String(),
		"is_defined", isDefined,
	)
	return isDefined
}

// staticValue evaluates an optional attribute without any variables. An
// omitted attribute yields a null value of the given type.
func staticValue(ctx context.Context, expr hcl.Expression, attrName string, ty cty.Type) (cty.Value, error) {
	if !isExprDefined(ctx, expr, attrName) {
		return cty.NullVal(ty), nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return cty.NilVal, fmt.Errorf("invalid %s: %w", attrName, diags)
	}
	return val, nil
}

func translateParameter(ctx context.Context, p *parameterBlock) (*model.Parameter, error) {
	val, err := staticValue(ctx, p.Value, "value", cty.Number)
	if err != nil {
		return nil, fmt.Errorf("in parameter '%s': %w", p.ID, err)
	}
	return &model.Parameter{ID: p.ID, Value: val}, nil
}

func translateReaction(ctx context.Context, r *reactionBlock) (*model.Reaction, error) {
	ctx, logger := ctxlog.With(ctx, "reaction", r.ID)

	reaction := &model.Reaction{ID: r.ID, Compartment: r.Compartment}

	var err error
	if reaction.Reactants, err = translateParticipants(ctx, r.Reactants); err != nil {
		return nil, fmt.Errorf("in reaction '%s': %w", r.ID, err)
	}
	if reaction.Products, err = translateParticipants(ctx, r.Products); err != nil {
		return nil, fmt.Errorf("in reaction '%s': %w", r.ID, err)
	}
	if reaction.Modifiers, err = translateParticipants(ctx, r.Modifiers); err != nil {
		return nil, fmt.Errorf("in reaction '%s': %w", r.ID, err)
	}

	if isExprDefined(ctx, r.RateLaw, "rate_law") {
		logger.Debug("`rate_law` attribute is defined.")
		reaction.RateLaw = newExpression(r.RateLaw)
	}
	return reaction, nil
}

func translateParticipants(ctx context.Context, blocks []*participantBlock) ([]model.SpeciesRef, error) {
	refs := make([]model.SpeciesRef, 0, len(blocks))
	for _, b := range blocks {
		coefficient, err := staticValue(ctx, b.Coefficient, "coefficient", cty.Number)
		if err != nil {
			return nil, fmt.Errorf("species '%s': %w", b.Species, err)
		}
		refs = append(refs, model.SpeciesRef{Species: b.Species, Coefficient: coefficient})
	}
	return refs, nil
}
