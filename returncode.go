package ach

import "github.com/gocarina/gocsv"

// ReturnReason is one row of the NACHA return reason code table.
type ReturnReason struct {
	Code        string `csv:"Code"`
	Description string `csv:"Description"`
}

var returnCodes map[string]string

func init() {
	var reasons []ReturnReason
	if err := gocsv.UnmarshalString(returnCodeCSV, &reasons); err != nil {
		panic("ach: return code table: " + err.Error())
	}
	returnCodes = make(map[string]string, len(reasons))
	for _, r := range reasons {
		returnCodes[r.Code] = r.Description
	}
}

// ReturnCodeDescription returns the NACHA rules description for a return
// reason code such as "R01", or "" when the code is unknown.
func ReturnCodeDescription(code string) string {
	return returnCodes[code]
}

const returnCodeCSV = `Code,Description
R01,Insufficient Funds
R02,Account Closed
R03,No Account/Unable to Locate Account
R04,Invalid Account Number
R05,Unauthorized Debit to Consumer Account Using Corporate SEC Code
R06,Returned per ODFI's Request
R07,Authorization Revoked by Customer
R08,Payment Stopped
R09,Uncollected Funds
R10,Customer Advises Not Authorized
R11,Check Truncation Entry Return
R12,Account Sold to Another DFI
R13,Invalid ACH Routing Number
R14,Representative Payee Deceased or Unable to Continue in that Capacity
R15,Beneficiary or Account Holder Deceased
R16,Account Frozen
R17,File Record Edit Criteria
R18,Improper Effective Entry Date
R19,Amount Field Error
R20,Non-Transaction Account
R21,Invalid Company Identification
R22,Invalid Individual ID Number
R23,Credit Entry Refused by Receiver
R24,Duplicate Entry
R25,Addenda Error
R26,Mandatory Field Error
R27,Trace Number Error
R28,Routing Number Check Digit Error
R29,Corporate Customer Advises Not Authorized
R30,RDFI Not Participant in Check Truncation Program
R31,Permissible Return Entry
R32,RDFI Non-Settlement
R33,Return of XCK Entry
R34,Limited Participation DFI
R35,Return of Improper Debit Entry
R36,Return of Improper Credit Entry
R37,Source Document Presented for Payment
R38,Stop Payment on Source Document
R39,Improper Source Document
R40,Return of ENR Entry by Federal Government Agency
R41,Invalid Transaction Code
R42,Routing Number/Check Digit Error
R43,Invalid DFI Account Number
R44,Invalid Individual ID Number/Identification Number
R45,Invalid Individual Name/Company Name
R46,Invalid Representative Payee Indicator
R47,Duplicate Enrollment
R50,State Law Affecting RCK Acceptance
R51,Item is Ineligible
R52,Stop Payment on Item
R53,Item and ACH Entry Presented for Payment
R61,Misrouted Return
R67,Duplicate Return
R68,Untimely Return
R69,Field Error(s)
R70,Permissible Return Entry Not Accepted/Return Not Requested by ODFI
R71,Misrouted Dishonored Return
R72,Untimely Dishonored Return
R73,Timely Original Return
R74,Corrected Return
R75,Original Return Not a Duplicate
R76,No Errors Found
R80,Cross-Border Payment Coding Error
R81,Non-Participant in Cross-Border Program
R82,Invalid Foreign Receiving DFI Identification
R83,Foreign Receiving DFI Unable to Settle
R84,Entry Not Processed by Gateway Operator
R85,Improperly Reinitiated Entry
`
