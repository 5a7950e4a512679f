/*
Copyright 2024 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

const (
	GroupName = "hypervolume.moo-lab.io"
	Version   = "v1alpha1"
	Kind      = "IndicatorConfiguration"
)

// SchemeGroupVersion is the apiVersion every configuration file must carry.
var SchemeGroupVersion = GroupName + "/" + Version

// IndicatorConfiguration describes how the fronts of one experiment are
// scored. All fronts compared within an experiment must share it, otherwise
// their indicator values are not comparable.
type IndicatorConfiguration struct {
	metav1.TypeMeta `json:",inline"`

	// ReferencePoint bounds the hypervolume, one value per objective. It takes
	// precedence over ReferenceFrontFile for the hypervolume; the front file is
	// then only read by the distance indicators.
	ReferencePoint []float64 `json:"referencePoint,omitempty"`

	// ReferenceFrontFile is a front file the distance indicators compare
	// against. When ReferencePoint is empty the hypervolume reference point
	// is derived from it as the worst value of every objective plus Offset.
	ReferenceFrontFile string `json:"referenceFrontFile,omitempty"`

	// Offset is added to every objective of a reference point derived from
	// ReferenceFrontFile.
	Offset *float64 `json:"offset,omitempty"`

	// Indicators lists the indicators to compute, by name ("HV", "EPSILON",
	// "GD", "IGD"). Defaults to ["HV"].
	Indicators []string `json:"indicators,omitempty"`
}
