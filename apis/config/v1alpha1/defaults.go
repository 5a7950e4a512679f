package v1alpha1

var (
	defaultOffset     = 0.0
	defaultIndicators = []string{"HV"}
)

// SetDefaults_IndicatorConfiguration fills in unset fields.
func SetDefaults_IndicatorConfiguration(obj *IndicatorConfiguration) {
	if obj.APIVersion == "" {
		obj.APIVersion = SchemeGroupVersion
	}
	if obj.Kind == "" {
		obj.Kind = Kind
	}
	if obj.Offset == nil {
		offset := defaultOffset
		obj.Offset = &offset
	}
	if len(obj.Indicators) == 0 {
		obj.Indicators = append([]string(nil), defaultIndicators...)
	}
}
