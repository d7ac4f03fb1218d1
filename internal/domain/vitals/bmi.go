package vitals

import "fmt"

// AssessBMI computes BMI from a weight in kilograms and a height in
// centimetres. ok is false when either input is not positive.
func AssessBMI(weightKg, heightCm float64) (a BMIAssessment, ok bool) {
	if weightKg <= 0 || heightCm <= 0 {
		return BMIAssessment{}, false
	}
	heightM := heightCm / 100
	bmi := round1(weightKg / (heightM * heightM))

	a.BMI = bmi
	switch {
	case bmi < 18.5:
		a.Status = "Underweight"
		a.Message = fmt.Sprintf("BMI is %.1f. Consider a nutrition plan.", bmi)
	case bmi < 24.9:
		a.Status = "Healthy Weight"
		a.Message = fmt.Sprintf("BMI is %.1f. Great job!", bmi)
	case bmi < 29.9:
		a.Status = "Overweight"
		a.Message = fmt.Sprintf("BMI is %.1f. Try regular cardio.", bmi)
	default:
		a.Status = "Obese"
		a.Message = fmt.Sprintf("BMI is %.1f. Please consult a doctor.", bmi)
	}
	return a, true
}
