// dynafix provisions and tears down rows in AWS DynamoDB tables for automated tests
//
// A fixture is bound to a single table and delegates all storage calls to the
// DynamoDB client built by the session. Items are arbitrary attribute maps, either
// marshalled from Go values using dynamodbattribute or supplied directly as
// attribute value maps.
//
// Keys are inferred by convention: an item carrying both "partitionKey" and
// "sortKey" attributes belongs to a composite key table, an item carrying an "id"
// attribute to a simple key table. Anything else is assumed to already be a valid
// key shape and is passed to DynamoDB as-is.
//
// To seed a table before a test and clear it afterwards:
//
//     session := dynafix.New(&aws.Config{Region: aws.String("us-east-1")})
//     orders := session.Fixture("orders")
//
//     _, err := orders.Provision([]interface{}{
//         map[string]interface{}{"partitionKey": "u1", "sortKey": "o1", "amount": 10},
//     })
//     if err != nil {
//         log.Fatalf("failed to provision: %s", err)
//     }
//     defer orders.Cleanup()
//
package dynafix
