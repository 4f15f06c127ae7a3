package schema

// BusinessType categorizes a business for the registration service.
type BusinessType string

const (
	BusinessRestaurant   BusinessType = "restaurant"
	BusinessSalon        BusinessType = "salon"
	BusinessMedical      BusinessType = "medical"
	BusinessFitness      BusinessType = "fitness"
	BusinessHospitality  BusinessType = "hospitality"
	BusinessProfessional BusinessType = "professional_services"
	BusinessHomeServices BusinessType = "home_services"
	BusinessRetail       BusinessType = "retail"
	BusinessEducation    BusinessType = "education"
	BusinessOther        BusinessType = "other"
)

// ParameterType is the declared type of a service parameter.
type ParameterType string

const (
	ParamString   ParameterType = "string"
	ParamInteger  ParameterType = "integer"
	ParamNumber   ParameterType = "number"
	ParamBoolean  ParameterType = "boolean"
	ParamArray    ParameterType = "array"
	ParamObject   ParameterType = "object"
	ParamDate     ParameterType = "date"
	ParamDateTime ParameterType = "datetime"
	ParamTime     ParameterType = "time"
)

// WorkflowPattern describes how a service executes its booking steps.
type WorkflowPattern string

const (
	WorkflowSequential  WorkflowPattern = "sequential"
	WorkflowParallel    WorkflowPattern = "parallel"
	WorkflowConditional WorkflowPattern = "conditional"
	WorkflowHybrid      WorkflowPattern = "hybrid"
)

// CancellationType is the cancellation policy tier offered by a service.
type CancellationType string

const (
	CancellationFlexible CancellationType = "flexible"
	CancellationModerate CancellationType = "moderate"
	CancellationStrict   CancellationType = "strict"
	CancellationCustom   CancellationType = "custom"
)

// PaymentMethod is a supported way to pay for a service.
type PaymentMethod string

const (
	PaymentCreditCard    PaymentMethod = "credit_card"
	PaymentDebitCard     PaymentMethod = "debit_card"
	PaymentDigitalWallet PaymentMethod = "digital_wallet"
	PaymentBankTransfer  PaymentMethod = "bank_transfer"
	PaymentCash          PaymentMethod = "cash"
	PaymentCrypto        PaymentMethod = "crypto"
)

// PaymentTiming describes when payment is collected relative to the booking.
type PaymentTiming string

const (
	TimingAtBooking          PaymentTiming = "at_booking"
	TimingAtService          PaymentTiming = "at_service"
	TimingDepositThenBalance PaymentTiming = "deposit_then_balance"
)

// WebhookEvent is an event type the registration service can deliver.
type WebhookEvent string

const (
	EventBookingCreated   WebhookEvent = "booking.created"
	EventBookingUpdated   WebhookEvent = "booking.updated"
	EventBookingCancelled WebhookEvent = "booking.cancelled"
	EventPaymentCompleted WebhookEvent = "payment.completed"
	EventPaymentFailed    WebhookEvent = "payment.failed"
)

var businessTypes = map[BusinessType]struct{}{
	BusinessRestaurant:   {},
	BusinessSalon:        {},
	BusinessMedical:      {},
	BusinessFitness:      {},
	BusinessHospitality:  {},
	BusinessProfessional: {},
	BusinessHomeServices: {},
	BusinessRetail:       {},
	BusinessEducation:    {},
	BusinessOther:        {},
}

var parameterTypes = map[ParameterType]struct{}{
	ParamString:   {},
	ParamInteger:  {},
	ParamNumber:   {},
	ParamBoolean:  {},
	ParamArray:    {},
	ParamObject:   {},
	ParamDate:     {},
	ParamDateTime: {},
	ParamTime:     {},
}

var workflowPatterns = map[WorkflowPattern]struct{}{
	WorkflowSequential:  {},
	WorkflowParallel:    {},
	WorkflowConditional: {},
	WorkflowHybrid:      {},
}

var cancellationTypes = map[CancellationType]struct{}{
	CancellationFlexible: {},
	CancellationModerate: {},
	CancellationStrict:   {},
	CancellationCustom:   {},
}

var paymentMethods = map[PaymentMethod]struct{}{
	PaymentCreditCard:    {},
	PaymentDebitCard:     {},
	PaymentDigitalWallet: {},
	PaymentBankTransfer:  {},
	PaymentCash:          {},
	PaymentCrypto:        {},
}

var paymentTimings = map[PaymentTiming]struct{}{
	TimingAtBooking:          {},
	TimingAtService:          {},
	TimingDepositThenBalance: {},
}

var webhookEvents = map[WebhookEvent]struct{}{
	EventBookingCreated:   {},
	EventBookingUpdated:   {},
	EventBookingCancelled: {},
	EventPaymentCompleted: {},
	EventPaymentFailed:    {},
}

// IsBusinessType reports whether s names a recognized business type.
func IsBusinessType(s string) bool {
	_, ok := businessTypes[BusinessType(s)]
	return ok
}

// IsParameterType reports whether s names a recognized parameter type.
func IsParameterType(s string) bool {
	_, ok := parameterTypes[ParameterType(s)]
	return ok
}

// IsWorkflowPattern reports whether s names a recognized workflow pattern.
func IsWorkflowPattern(s string) bool {
	_, ok := workflowPatterns[WorkflowPattern(s)]
	return ok
}

// IsCancellationType reports whether s names a recognized cancellation tier.
func IsCancellationType(s string) bool {
	_, ok := cancellationTypes[CancellationType(s)]
	return ok
}

// IsPaymentMethod reports whether s names a recognized payment method.
func IsPaymentMethod(s string) bool {
	_, ok := paymentMethods[PaymentMethod(s)]
	return ok
}

// IsPaymentTiming reports whether s names a recognized payment timing.
func IsPaymentTiming(s string) bool {
	_, ok := paymentTimings[PaymentTiming(s)]
	return ok
}

// IsWebhookEvent reports whether s names a recognized webhook event type.
func IsWebhookEvent(s string) bool {
	_, ok := webhookEvents[WebhookEvent(s)]
	return ok
}

// BusinessTypes returns the recognized business types in stable order.
func BusinessTypes() []BusinessType {
	return []BusinessType{
		BusinessRestaurant,
		BusinessSalon,
		BusinessMedical,
		BusinessFitness,
		BusinessHospitality,
		BusinessProfessional,
		BusinessHomeServices,
		BusinessRetail,
		BusinessEducation,
		BusinessOther,
	}
}

// PaymentMethods returns the recognized payment methods in stable order.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{
		PaymentCreditCard,
		PaymentDebitCard,
		PaymentDigitalWallet,
		PaymentBankTransfer,
		PaymentCash,
		PaymentCrypto,
	}
}
