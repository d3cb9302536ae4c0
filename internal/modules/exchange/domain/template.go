package domain

// TemplateCSV is the import-template content handed to users as a starting
// point, sample rows included.
func TemplateCSV() string {
	return `D,S,W,R,P,C,N
2024-01-01,23:30,65.5,8,8000,2000,今天感觉不错
2024-01-02,,66.0,7,7500,1800,体重有所增加
2024-01-03,22:45,64.8,9,9000,1900,早睡早起身体好
`
}
