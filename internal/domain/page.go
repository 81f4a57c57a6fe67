package domain

// PageContentType is the media type the page is served with.
const PageContentType = "text/html; charset=utf-8"

// PageHTML is the document served on the root route. Every response carries
// exactly these bytes.
const PageHTML = `
  <!DOCTYPE html>
    <html lang="en">
    <head>
      <meta charset="UTF-8">
      <meta http-equiv="X-UA-Compatible" content="IE=edge">
      <meta name="viewport" content="width=device-width, initial-scale=1.0">
      <title>Document</title>
    </head>
    <body>
      <h1>Project Set-up </h1>
    </body>
    </html>`
