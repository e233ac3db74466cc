package models

import "strings"

const bboxPlaceholder = "{bbox}"

// BuildingQueryTemplate selects every building way and relation inside a
// box, then recurses down to the nodes needed to draw them.
const BuildingQueryTemplate = `
[out:json][timeout:60];
(
  way["building"]({bbox});
  relation["building"]({bbox});
);
out body;
>;
out skel qt;
`

// RenderBuildingQuery substitutes bbox into BuildingQueryTemplate.
func RenderBuildingQuery(bbox BoundingBox) string {
	return strings.ReplaceAll(BuildingQueryTemplate, bboxPlaceholder, bbox.String())
}
