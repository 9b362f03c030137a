package adsdomain

// SearchRow é uma linha de resposta do googleAds:search; cada recurso só vem
// preenchido quando selecionado na query.
type SearchRow struct {
	Customer         *Customer         `json:"customer,omitempty"`
	Campaign         *Campaign         `json:"campaign,omitempty"`
	CampaignBudget   *CampaignBudget   `json:"campaignBudget,omitempty"`
	Metrics          *Metrics          `json:"metrics,omitempty"`
	Segments         *Segments         `json:"segments,omitempty"`
	ConversionAction *ConversionAction `json:"conversionAction,omitempty"`
}

type SearchRequest struct {
	Query     string `json:"query"`
	PageToken string `json:"pageToken,omitempty"`
}

type SearchResponse struct {
	Results       []SearchRow `json:"results"`
	NextPageToken string      `json:"nextPageToken,omitempty"`
}

type ListAccessibleCustomersResponse struct {
	ResourceNames []string `json:"resourceNames"`
}

type Customer struct {
	ID              Value `json:"id"`
	DescriptiveName Value `json:"descriptiveName"`
	CurrencyCode    Value `json:"currencyCode"`
	TimeZone        Value `json:"timeZone"`
}

type Campaign struct {
	ID        Value `json:"id"`
	Name      Value `json:"name"`
	Status    Value `json:"status"`
	StartDate Value `json:"startDate"`
	EndDate   Value `json:"endDate"`
}

type CampaignBudget struct {
	AmountMicros Value `json:"amountMicros"`
}

type Metrics struct {
	Impressions             Value `json:"impressions"`
	Clicks                  Value `json:"clicks"`
	CostMicros              Value `json:"costMicros"`
	Conversions             Value `json:"conversions"`
	ConversionsValue        Value `json:"conversionsValue"`
	Ctr                     Value `json:"ctr"`
	AverageCpc              Value `json:"averageCpc"`
	ConversionsValuePerCost Value `json:"conversionsValuePerCost"`
}

type Segments struct {
	Device Value `json:"device"`
	Date   Value `json:"date"`
}

type ConversionAction struct {
	ID       Value `json:"id"`
	Name     Value `json:"name"`
	Status   Value `json:"status"`
	Type     Value `json:"type"`
	Category Value `json:"category"`
}
